// Comando seed: carga categorías y productos de demostración en la base
// de datos. Pensado para entornos de desarrollo; las inserciones son
// idempotentes (ON CONFLICT DO NOTHING).
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercado-admin-api/internal/infrastructure/postgres"
	"github.com/jhoicas/mercado-admin-api/pkg/config"
	"github.com/jhoicas/mercado-admin-api/pkg/logger"
)

type seedCategory struct {
	ID   string
	Name string
}

type seedProduct struct {
	Name          string
	Barcode       string
	CategoryID    string
	Description   string
	UnitPrice     string
	StockQuantity int
	ReorderLevel  int
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categories := []seedCategory{
		{ID: uuid.New().String(), Name: "Lácteos"},
		{ID: uuid.New().String(), Name: "Granos"},
		{ID: uuid.New().String(), Name: "Panadería"},
		{ID: uuid.New().String(), Name: "Bebidas"},
		{ID: uuid.New().String(), Name: "Aseo"},
	}

	for _, c := range categories {
		_, err := pool.Exec(ctx, `
			INSERT INTO categories (id, name)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING`,
			c.ID, c.Name)
		if err != nil {
			log.Fatal().Err(err).Str("category", c.Name).Msg("insertar categoría")
		}
	}
	log.Info().Int("count", len(categories)).Msg("categorías sembradas")

	// Las categorías pueden existir de una corrida anterior con otro id;
	// resolvemos los ids reales por nombre antes de insertar productos.
	byName := make(map[string]string, len(categories))
	rows, err := pool.Query(ctx, `SELECT id, name FROM categories`)
	if err != nil {
		log.Fatal().Err(err).Msg("leer categorías")
	}
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			rows.Close()
			log.Fatal().Err(err).Msg("escanear categoría")
		}
		byName[name] = id
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		log.Fatal().Err(err).Msg("iterar categorías")
	}

	products := []seedProduct{
		{Name: "Leche entera 1L", Barcode: "7701234500011", CategoryID: byName["Lácteos"], Description: "Leche entera pasteurizada", UnitPrice: "4500.00", StockQuantity: 40, ReorderLevel: 10},
		{Name: "Queso campesino 500g", Barcode: "7701234500028", CategoryID: byName["Lácteos"], Description: "Queso fresco", UnitPrice: "9800.00", StockQuantity: 8, ReorderLevel: 10},
		{Name: "Arroz blanco 1kg", Barcode: "7701234500035", CategoryID: byName["Granos"], Description: "", UnitPrice: "5200.00", StockQuantity: 120, ReorderLevel: 25},
		{Name: "Fríjol cargamanto 500g", Barcode: "7701234500042", CategoryID: byName["Granos"], Description: "", UnitPrice: "7400.00", StockQuantity: 15, ReorderLevel: 15},
		{Name: "Pan integral", Barcode: "7701234500059", CategoryID: byName["Panadería"], Description: "Paquete x6", UnitPrice: "6100.00", StockQuantity: 22, ReorderLevel: 8},
		{Name: "Café molido 250g", Barcode: "7701234500066", CategoryID: byName["Bebidas"], Description: "Tostión media", UnitPrice: "12900.00", StockQuantity: 5, ReorderLevel: 12},
		{Name: "Gaseosa 1.5L", Barcode: "7701234500073", CategoryID: byName["Bebidas"], Description: "", UnitPrice: "5800.00", StockQuantity: 60, ReorderLevel: 20},
		{Name: "Jabón en barra x3", Barcode: "7701234500080", CategoryID: byName["Aseo"], Description: "", UnitPrice: "8300.00", StockQuantity: 34, ReorderLevel: 10},
	}

	for _, p := range products {
		price, err := decimal.NewFromString(p.UnitPrice)
		if err != nil {
			log.Fatal().Err(err).Str("product", p.Name).Msg("precio inválido")
		}

		var description *string
		if p.Description != "" {
			description = &p.Description
		}

		_, err = pool.Exec(ctx, `
			INSERT INTO products (id, name, barcode, category_id, description, unit_price, stock_quantity, reorder_level)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (barcode) WHERE barcode IS NOT NULL DO NOTHING`,
			uuid.New().String(), p.Name, p.Barcode, p.CategoryID, description, price, p.StockQuantity, p.ReorderLevel)
		if err != nil {
			log.Fatal().Err(err).Str("product", p.Name).Msg("insertar producto")
		}
	}
	log.Info().Int("count", len(products)).Msg("productos sembrados")
}
