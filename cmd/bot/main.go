package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	discordrouter "github.com/jose-valero/gamenight-bot/internal/adapters/discord"
	"github.com/jose-valero/gamenight-bot/internal/app/service"
	"github.com/jose-valero/gamenight-bot/internal/infra/config"
	"github.com/jose-valero/gamenight-bot/internal/infra/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	_ = godotenv.Load()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	// DB
	db, err := storage.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := storage.Migrate(db); err != nil {
		log.Fatal("migrate:", err)
	}
	log.Println("✅ DB lista y migrada")

	// Repos
	usersRepo := storage.NewUserRepo(db)
	availRepo := storage.NewAvailabilityRepo(db)
	gamesRepo := storage.NewGamesRepo(db)

	// Discord session
	auth := cfg.DiscordToken
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(auth)), "bot ") {
		auth = "Bot " + strings.TrimSpace(auth)
	}
	s, err := discordgo.New(auth)
	if err != nil {
		log.Fatal(err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds
	if err := s.Open(); err != nil {
		log.Fatal(err)
	}
	defer s.Close()
	log.Printf("✅ Conectado como %s (%s)", s.State.User.Username, s.State.User.ID)

	// Services
	profileSvc := service.NewProfileService(usersRepo)
	availSvc := service.NewAvailabilityService(usersRepo, availRepo)
	gamesSvc := service.NewGamesService(usersRepo, gamesRepo)
	matchSvc := service.NewMatchmakingService(usersRepo, availRepo, gamesRepo)

	// Router
	r := discordrouter.NewRouter(
		s,
		cfg.DiscordGuild,
		profileSvc,
		availSvc,
		gamesSvc,
		matchSvc,
		cfg.AdminRoleIDs,
	)
	if err := r.Register(); err != nil {
		log.Fatalf("registrando comandos: %v", err)
	}
	r.Handlers()
	log.Printf("✅ comandos registrados en guild %s", cfg.DiscordGuild)

	// Pruner de snoozes vencidos. El engine los ignora igual (evaluación
	// perezosa); esto sólo mantiene prolijas las filas.
	go func() {
		t := time.NewTicker(10 * time.Minute)
		defer t.Stop()
		for range t.C {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			n, err := usersRepo.PruneExpiredSnoozes(ctx)
			cancel()
			if err != nil {
				log.Printf("prune snoozes: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("🧹 snoozes vencidos limpiados: %d", n)
			}
		}
	}()

	// Esperar señal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop
}
