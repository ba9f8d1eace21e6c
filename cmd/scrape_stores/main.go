// Утилита scrape_stores собирает адреса магазинов со страниц store locator
// розничных сетей и складывает их в базу данных движка.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"storefinder/database"
	"storefinder/dataset"
)

// storeSource источник данных store locator одной сети
type storeSource struct {
	brand string
	url   string
}

// Страницы каталогов магазинов бельгийских сетей
var storeSources = []storeSource{
	{"Delhaize", "https://stores.delhaize.be/fr"},
	{"Carrefour", "https://winkels.carrefour.be/fr/magasins"},
	{"Colruyt", "https://www.colruyt.be/fr/magasins"},
	{"Aldi", "https://www.aldi.be/fr/informations/magasins.html"},
	{"Lidl", "https://www.lidl.be/fr/magasins"},
}

func main() {
	var (
		dbPath  = flag.String("db", "./storefinder.db", "Path to the database")
		brand   = flag.String("brand", "", "Scrape only this brand (default: all)")
		dryRun  = flag.Bool("dry-run", false, "Parse pages without writing to the database")
		timeout = flag.Duration("timeout", 30*time.Second, "HTTP timeout per page")
	)
	flag.Parse()

	client := &http.Client{Timeout: *timeout}

	var all []dataset.Store
	for _, source := range storeSources {
		if *brand != "" && !strings.EqualFold(source.brand, *brand) {
			continue
		}

		log.Printf("Scraping %s: %s", source.brand, source.url)
		stores, err := scrapeSource(context.Background(), client, source)
		if err != nil {
			log.Printf("Warning: %s failed: %v", source.brand, err)
			continue
		}

		log.Printf("  found %d stores", len(stores))
		all = append(all, stores...)
	}

	if len(all) == 0 {
		log.Fatal("No stores scraped from any source")
	}

	if *dryRun {
		for _, store := range all {
			fmt.Printf("%s\t%s\t%s\n", store.Brand, store.Name, store.Address)
		}
		log.Printf("Dry run: %d stores, database untouched", len(all))
		os.Exit(0)
	}

	db, err := database.Open(*dbPath, database.Config{})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.ReplaceStores(all); err != nil {
		log.Fatalf("Failed to store scraped stores: %v", err)
	}

	log.Printf("Scrape complete: %d stores saved to %s", len(all), *dbPath)
}

// scrapeSource загружает страницу каталога и извлекает карточки магазинов.
// Верстка каталогов различается, поэтому пробуем несколько типовых
// селекторов от специфичных к общим.
func scrapeSource(ctx context.Context, client *http.Client, source storeSource) ([]dataset.Store, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", "StoreFinder/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	selectors := []string{
		".store-card",
		".store-item",
		"[itemtype*='LocalBusiness']",
		".location-item",
		"li.store",
	}

	var stores []dataset.Store
	for _, selector := range selectors {
		doc.Find(selector).Each(func(i int, s *goquery.Selection) {
			store := parseStoreCard(s, source.brand)
			if store.Name != "" {
				stores = append(stores, store)
			}
		})
		if len(stores) > 0 {
			break
		}
	}

	return stores, nil
}

// parseStoreCard извлекает поля магазина из карточки
func parseStoreCard(s *goquery.Selection, brand string) dataset.Store {
	name := textOf(s, ".store-name, .name, h2, h3, [itemprop='name']")
	address := textOf(s, ".store-address, .address, [itemprop='streetAddress']")
	city := textOf(s, ".store-city, .city, [itemprop='addressLocality']")
	postal := textOf(s, ".store-postal, .postal-code, [itemprop='postalCode']")
	phone := textOf(s, ".store-phone, .phone, [itemprop='telephone']")

	// Имя без названия сети дополняем городом
	if name != "" && city != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(brand)) {
		name = brand + " " + name
	}

	return dataset.Store{
		Name:       name,
		Brand:      brand,
		Address:    address,
		City:       city,
		PostalCode: postal,
		Phone:      phone,
	}
}

// textOf возвращает текст первого подходящего элемента
func textOf(s *goquery.Selection, selector string) string {
	return strings.TrimSpace(s.Find(selector).First().Text())
}
