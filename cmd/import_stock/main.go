// import_stock carga saldos iniciales desde un CSV como movimientos RECEIPT_IN.
//
// Uso: go run ./cmd/import_stock -company <id> -warehouse <id> [-utf8] [-delim ,] saldos.csv
//
// Cada fila lleva llave de idempotencia "import:<archivo>:<línea>", así que volver a correr el
// mismo archivo no duplica entradas.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/messaging"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-ledger/pkg/config"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

type options struct {
	companyID   string
	warehouseID string
	userID      string
	path        string
	latin1      bool
	delim       rune
	dryRun      bool
}

func main() {
	companyID := flag.String("company", "", "ID de la empresa")
	warehouseID := flag.String("warehouse", "", "ID de la bodega destino")
	userID := flag.String("user", "import", "usuario que registra los movimientos")
	utf8 := flag.Bool("utf8", false, "el archivo viene en UTF-8 (por defecto ISO-8859-1)")
	delim := flag.String("delim", ";", "separador de columnas")
	dryRun := flag.Bool("dry-run", false, "solo valida el archivo")
	flag.Parse()

	if flag.NArg() != 1 || *companyID == "" || *warehouseID == "" || len([]rune(*delim)) != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "import_stock"})

	opts := options{
		companyID:   *companyID,
		warehouseID: *warehouseID,
		userID:      *userID,
		path:        flag.Arg(0),
		latin1:      !*utf8,
		delim:       []rune(*delim)[0],
		dryRun:      *dryRun,
	}
	if err := run(context.Background(), cfg, log, opts); err != nil {
		log.Error().Err(err).Str("file", opts.path).Msg("importación fallida")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, opts options) error {
	f, err := os.Open(opts.path)
	if err != nil {
		return fmt.Errorf("abrir CSV: %w", err)
	}
	defer f.Close()

	rows, err := readRows(f, opts.latin1, opts.delim)
	if err != nil {
		return fmt.Errorf("leer CSV: %w", err)
	}
	log.Info().Int("rows", len(rows)).Str("file", opts.path).Msg("archivo leído")
	if opts.dryRun {
		return nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	read := postgres.Repos(pool)
	ledger := inventory.NewLedger(postgres.NewTxRunner(pool, cfg.Storage.TxMaxAttempts, log), read, messaging.NewLogPublisher(log), log)

	base := filepath.Base(opts.path)
	imported, failed := 0, 0
	for _, row := range rows {
		product, err := read.Products.GetByCompanyAndSKU(ctx, opts.companyID, row.SKU)
		if err != nil || product == nil {
			log.Error().Err(err).Int("line", row.Line).Str("sku", row.SKU).Msg("producto no encontrado")
			failed++
			continue
		}
		_, err = ledger.AppendMovement(ctx, inventory.MovementInput{
			CompanyID:      opts.companyID,
			UserID:         opts.userID,
			ProductID:      product.ID,
			WarehouseID:    opts.warehouseID,
			Type:           entity.MovementReceiptIn,
			QuantityChange: row.Quantity,
			Notes:          "saldo inicial " + base,
			IdempotencyKey: fmt.Sprintf("import:%s:%d", base, row.Line),
			Units:          rowUnits(row),
		})
		if err != nil {
			log.Error().Err(err).Int("line", row.Line).Str("sku", row.SKU).Msg("registrar entrada")
			failed++
			continue
		}
		imported++
	}
	log.Info().Int("imported", imported).Int("failed", failed).Msg("importación terminada")
	if failed > 0 {
		return fmt.Errorf("%d de %d filas no se importaron", failed, len(rows))
	}
	return nil
}
