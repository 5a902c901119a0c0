package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"templecms/internal/config"
	"templecms/internal/database"
	"templecms/internal/domain/auth"
	"templecms/internal/domain/contact"
	"templecms/internal/domain/event"
	"templecms/internal/domain/image"
	"templecms/internal/domain/project"
	"templecms/internal/middleware"
	jwtsvc "templecms/internal/pkg/jwt"
	"templecms/internal/storage"
)

// ownerDirectory adapts the event and project repositories to the image
// service's owner-existence checks.
type ownerDirectory struct {
	events   event.Repository
	projects project.Repository
}

func (d *ownerDirectory) EventExists(ctx context.Context, id int64) (bool, error) {
	return d.events.Exists(ctx, id)
}

func (d *ownerDirectory) ProjectExists(ctx context.Context, id int64) (bool, error) {
	return d.projects.Exists(ctx, id)
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&auth.User{},
		&event.Event{},
		&project.Project{},
		&image.Image{},
		&contact.Message{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	userRepo := auth.NewRepository(db)
	eventRepo := event.NewRepository(db)
	projectRepo := project.NewRepository(db)
	imageRepo := image.NewRepository(db)
	contactRepo := contact.NewRepository(db)

	var store storage.Store
	if cfg.UseS3() {
		store, err = storage.NewS3(context.Background(), storage.S3Config{
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			AccessKeyID:   cfg.S3AccessKeyID,
			SecretKey:     cfg.S3SecretKey,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
		if err != nil {
			log.Fatal(err)
		}
		log.Println("Using S3 blob storage, bucket:", cfg.S3Bucket)
	} else {
		store = storage.NewLocal(cfg.UploadsDir, cfg.StaticURLBase)
		log.Println("Using local blob storage:", cfg.UploadsDir)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService, int64(j.TTL().Seconds()))

	imageService := image.NewService(imageRepo, store, &ownerDirectory{
		events:   eventRepo,
		projects: projectRepo,
	})
	imageHandler := image.NewHandler(imageService)

	eventService := event.NewService(eventRepo, imageService)
	eventHandler := event.NewHandler(eventService)

	projectService := project.NewService(projectRepo, imageService)
	projectHandler := project.NewHandler(projectService)

	contactService := contact.NewService(contactRepo)
	contactHandler := contact.NewHandler(contactService)

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.ErrorLogger())

	if !cfg.UseS3() {
		r.Static(cfg.StaticURLBase, cfg.UploadsDir)
	}

	v1 := r.Group("/api/v1")
	{
		// public
		auth.RegisterPublicRoutes(v1, authHandler)
		event.RegisterPublicRoutes(v1, eventHandler)
		project.RegisterPublicRoutes(v1, projectHandler)
		image.RegisterPublicRoutes(v1, imageHandler)
		contact.RegisterPublicRoutes(v1, contactHandler)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			auth.RegisterProtectedRoutes(protected, authHandler)

			admin := protected.Group("/admin")
			{
				event.RegisterAdminRoutes(admin, eventHandler)
				project.RegisterAdminRoutes(admin, projectHandler)
				image.RegisterAdminRoutes(admin, imageHandler)
				contact.RegisterAdminRoutes(admin, contactHandler)
			}
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
