// seed_municipios carga el catálogo de municipios a partir del XML oficial Municipios.xml.
//
// Uso:
//
//	go run ./cmd/seed_municipios [-sql salida.sql] [ruta/Municipios.xml]
//
// Sin -sql hace upsert directo en la base configurada (DATABASE_URL o DB_*).
// Con -sql solo escribe el script, útil para revisarlo o versionarlo como migración.
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
	sqlOut := flag.String("sql", "", "escribe el script SQL en esta ruta en lugar de cargar la base")
	flag.Parse()

	log := logger.New(logger.Config{Env: os.Getenv("APP_ENV"), Level: "info"}).Component("seed_municipios")

	xmlPath := "Municipios.xml"
	if flag.NArg() > 0 {
		xmlPath = flag.Arg(0)
	}
	f, err := os.Open(xmlPath)
	if err != nil {
		log.Fatal().Err(err).Str("xml", xmlPath).Msg("abrir XML")
	}
	defer f.Close()

	list, err := parseMunicipios(f)
	if err != nil {
		log.Fatal().Err(err).Str("xml", xmlPath).Msg("leer municipios")
	}

	if *sqlOut != "" {
		out, err := os.Create(*sqlOut)
		if err != nil {
			log.Fatal().Err(err).Msg("crear archivo")
		}
		defer out.Close()
		if err := writeSQL(out, list); err != nil {
			log.Fatal().Err(err).Msg("escribir SQL")
		}
		log.Info().Str("archivo", *sqlOut).Int("municipios", len(list)).Msg("script generado")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cargar configuración")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	n, err := postgres.NewMunicipioRepository(pool).Upsert(ctx, list)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar municipios")
	}
	log.Info().Int("municipios", n).Msg("catálogo actualizado")
}
