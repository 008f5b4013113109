package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// transactionPayload mirrors the POST /api/transactions body
type transactionPayload struct {
	Type            string `json:"type"`
	CategoryID      uint64 `json:"categoryId"`
	PaymentMethod   string `json:"paymentMethod"`
	Vendor          string `json:"vendor"`
	Amount          int64  `json:"amount"`
	TransactionDate string `json:"transactionDate"`
}

// scenario is one kind of request the workers pick from
type scenario struct {
	Name   string
	Method string
	Path   string
	Body   func(now time.Time) any
}

type result struct {
	Scenario     string
	ResponseTime time.Duration
	StatusCode   int
	Err          error
}

// stats aggregates results across workers
type stats struct {
	mu            sync.Mutex
	responseTimes []time.Duration
	successful    int
	failed        int
	errorCounts   map[string]int
	scenarioStats map[string]int
}

func (s *stats) record(r result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.responseTimes = append(s.responseTimes, r.ResponseTime)
	s.scenarioStats[r.Scenario]++
	if r.Err == nil {
		s.successful++
		return
	}
	s.failed++
	s.errorCounts[r.Err.Error()]++
}

func (s *stats) completed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.successful + s.failed
}

func expense(vendor string, categoryID uint64, minAmount, maxAmount int64) func(time.Time) any {
	return func(now time.Time) any {
		return transactionPayload{
			Type:            "EXPENSE",
			CategoryID:      categoryID,
			PaymentMethod:   "CARD",
			Vendor:          vendor,
			Amount:          minAmount + rand.Int63n(maxAmount-minAmount+1),
			TransactionDate: now.AddDate(0, 0, -rand.Intn(now.Day())).Format(time.DateOnly),
		}
	}
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent workers")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	token := flag.String("token", "", "Bearer session token issued by /auth/{provider}/callback")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	if *token == "" {
		fmt.Println("A session token is required: -token <jwt>")
		return
	}

	scenarios := []scenario{
		{Name: "Expense Small", Method: http.MethodPost, Path: "/api/transactions", Body: expense("Cafe", 1, 3000, 9000)},
		{Name: "Expense Large", Method: http.MethodPost, Path: "/api/transactions", Body: expense("Market", 4, 50000, 200000)},
		{Name: "Income", Method: http.MethodPost, Path: "/api/transactions", Body: func(now time.Time) any {
			return transactionPayload{Type: "INCOME", CategoryID: 8, Vendor: "Salary", Amount: 2500000, TransactionDate: now.Format(time.DateOnly)}
		}},
		{Name: "Main Summary", Method: http.MethodGet, Path: "/api/budgets/main/summary"},
		{Name: "Daily Amounts", Method: http.MethodGet, Path: "/api/budgets/main/daily-amounts"},
		{Name: "List", Method: http.MethodGet, Path: "/api/transactions"},
	}

	fmt.Printf("Load testing %s\n", *baseURL)
	fmt.Printf("Scenarios: %d\n", len(scenarios))
	fmt.Printf("Concurrency: %d workers\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	st := &stats{
		responseTimes: make([]time.Duration, 0, *totalRequests),
		errorCounts:   make(map[string]int),
		scenarioStats: make(map[string]int),
	}

	client := &http.Client{Timeout: 10 * time.Second}
	ctx := context.Background()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*concurrency)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			if done := st.completed(); done > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					done, *totalRequests, float64(done)/float64(*totalRequests)*100)
			}
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	for i := 0; i < *totalRequests; i++ {
		sc := scenarios[rand.Intn(len(scenarios))]
		g.Go(func() error {
			if *delayMs > 0 {
				time.Sleep(time.Duration(*delayMs) * time.Millisecond)
			}
			st.record(send(gctx, client, *baseURL, *token, sc))
			return nil
		})
	}
	_ = g.Wait()

	printResults(st, *totalRequests, time.Since(startTime))
}

func send(ctx context.Context, client *http.Client, baseURL, token string, sc scenario) result {
	var body io.Reader
	if sc.Body != nil {
		raw, err := json.Marshal(sc.Body(time.Now()))
		if err != nil {
			return result{Scenario: sc.Name, Err: err}
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, sc.Method, baseURL+sc.Path, body)
	if err != nil {
		return result{Scenario: sc.Name, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := client.Do(req)
	res := result{Scenario: sc.Name, ResponseTime: time.Since(start), Err: err}
	if err != nil {
		return res
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	res.StatusCode = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		res.Err = fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return res
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[min(len(sorted)-1, len(sorted)*p/100)]
}

func printResults(st *stats, total int, elapsed time.Duration) {
	sorted := slices.Clone(st.responseTimes)
	slices.Sort(sorted)

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = sum / time.Duration(len(sorted))
	}

	tps := float64(st.successful) / elapsed.Seconds()

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", total)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", st.successful, float64(st.successful)/float64(total)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", st.failed, float64(st.failed)/float64(total)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", elapsed.Seconds())
	fmt.Printf("Successful TPS:      %.2f\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	if len(sorted) > 0 {
		fmt.Printf("Average Response:    %v\n", avg)
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P95 Response:        %v\n", percentile(sorted, 95))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	names := maps.Keys(st.scenarioStats)
	slices.Sort(names)
	for _, name := range names {
		count := st.scenarioStats[name]
		fmt.Printf("%-15s: %d requests (%.1f%%)\n", name, count, float64(count)/float64(total)*100)
	}

	if st.failed > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range st.errorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count, float64(count)/float64(total)*100)
		}
	}
}
