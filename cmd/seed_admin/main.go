// seed_admin crea (o restablece) el usuario Administrador inicial.
//
// Uso:
//
//	ADMIN_PASSWORD=... go run ./cmd/seed_admin -cedula 1085000000 -nombre "Admin" -email admin@empresa.co
//
// La contraseña se toma de ADMIN_PASSWORD para no dejarla en el historial del shell.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/jhoicas/ventas-instalaciones/internal/infrastructure/postgres"
	"github.com/jhoicas/ventas-instalaciones/pkg/config"
	"github.com/jhoicas/ventas-instalaciones/pkg/logger"
)

func main() {
	in := adminInput{Password: os.Getenv("ADMIN_PASSWORD")}
	flag.StringVar(&in.Cedula, "cedula", os.Getenv("ADMIN_CEDULA"), "cédula del administrador")
	flag.StringVar(&in.Nombre, "nombre", "Administrador", "nombre completo")
	flag.StringVar(&in.Email, "email", os.Getenv("ADMIN_EMAIL"), "email de acceso")
	flag.Parse()

	log := logger.New(logger.Config{Env: os.Getenv("APP_ENV"), Level: "info"}).Component("seed_admin")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cargar configuración")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if _, err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	created, err := ensureAdmin(ctx, postgres.NewAdministradorRepository(pool), in)
	if err != nil {
		log.Fatal().Err(err).Msg("crear administrador")
	}
	if created {
		log.Info().Str("email", in.Email).Msg("administrador creado")
		return
	}
	log.Info().Str("email", in.Email).Msg("administrador existente actualizado")
}
