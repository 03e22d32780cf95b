// Comando check: consulta de disponibilidad desde la terminal.
//
//	go run ./cmd/check -country de -items 306.043.67,10606640
//	go run ./cmd/check -country de -items 40299687 -store 174
//	go run ./cmd/check -countries
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/jhoicas/finnbar-api/internal/application/usecase"
	"github.com/jhoicas/finnbar-api/internal/domain"
	"github.com/jhoicas/finnbar-api/internal/domain/entity"
	"github.com/jhoicas/finnbar-api/internal/infrastructure/ingka"
	"github.com/jhoicas/finnbar-api/internal/infrastructure/storedata"
	"github.com/jhoicas/finnbar-api/pkg/config"
)

func main() {
	var (
		country       = flag.String("country", "", "código de país de dos letras (ej. de)")
		items         = flag.String("items", "", "ids de producto separados por coma (con o sin puntos)")
		store         = flag.String("store", "", "buCode de tienda para filtrar (opcional)")
		listCountries = flag.Bool("countries", false, "listar países soportados y salir")
		listStores    = flag.Bool("stores", false, "listar tiendas del país (-country) y salir")
		timeout       = flag.Duration("timeout", 0, "timeout de la consulta (0 = valor de configuración)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fatalf("cargar configuración: %v", err)
	}

	directory, err := storedata.Load()
	if err != nil {
		fatalf("carga del directorio de tiendas: %v", err)
	}

	switch {
	case *listCountries:
		printCountries(directory)
		return
	case *listStores:
		if *country == "" {
			fatalf("-stores requiere -country")
		}
		printStores(directory.StoresForCountry(*country))
		return
	}

	if *country == "" || *items == "" {
		flag.Usage()
		os.Exit(2)
	}

	wait := cfg.Ingka.Timeout()
	if *timeout > 0 {
		wait = *timeout
	}

	feed := ingka.NewClient(ingka.Config{
		BaseURL:  cfg.Ingka.BaseURL,
		ClientID: cfg.Ingka.ClientID,
		Timeout:  wait,
	})
	uc := usecase.NewAvailabilityUseCase(feed, directory)

	// La llamada bloqueante corre en un worker aparte y el resultado vuelve
	// por canal, igual que haría un front-end interactivo sobre este core.
	type checkResult struct {
		infos []entity.StockInfo
		err   error
	}
	results := make(chan checkResult, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), wait)
		defer cancel()
		infos, err := uc.Check(ctx, *country, strings.Split(*items, ","), *store)
		results <- checkResult{infos: infos, err: err}
	}()

	res := <-results
	if res.err != nil {
		fatalf("consulta de disponibilidad: %v", res.err)
	}
	if len(res.infos) == 0 {
		fmt.Println("sin resultados")
		return
	}
	printStock(res.infos)
}

func printCountries(directory *storedata.Directory) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CÓDIGO\tPAÍS")
	for _, code := range directory.CountryCodes() {
		fmt.Fprintf(w, "%s\t%s\n", code, directory.CountryName(code))
	}
	_ = w.Flush()
}

func printStores(stores []entity.Store) {
	if len(stores) == 0 {
		fmt.Println("sin tiendas para ese país")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BU\tTIENDA")
	for _, s := range stores {
		fmt.Fprintf(w, "%s\t%s\n", s.BuCode, s.Name)
	}
	_ = w.Flush()
}

func printStock(infos []entity.StockInfo) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIENDA\tBU\tPRODUCTO\tSTOCK\tPROBABILIDAD\tACTUALIZADO")
	for _, si := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			si.StoreName, si.BuCode, si.ProductID, si.Stock,
			domain.ProbabilityLabel(si.Probability), si.UpdatedAt)
	}
	_ = w.Flush()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
