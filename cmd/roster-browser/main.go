// Command roster-browser is an interactive terminal front end for the player
// listing endpoint. It wires the search controller, filter composer,
// pagination window and browse session together and drives them from stdin.
package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"roster-browser/internal/api"
	"roster-browser/internal/cache"
	"roster-browser/internal/common/config"
	"roster-browser/internal/common/logger"
	"roster-browser/internal/common/observability"
	"roster-browser/internal/composer"
	"roster-browser/internal/pagewindow"
	"roster-browser/internal/roster"
	"roster-browser/internal/searchbar"
	"roster-browser/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	zapLogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLogger.Sync()
	log := logger.NewZapAdapter(zapLogger)

	log.Info("Starting roster browser", map[string]interface{}{
		"name":        cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
		"endpoint":    cfg.Endpoint.BaseURL,
	})

	jaegerEndpoint := ""
	if cfg.Tracing.Enabled {
		jaegerEndpoint = cfg.Tracing.JaegerEndpoint
	}
	obs := observability.New(cfg.App.Name, jaegerEndpoint)
	defer obs.Shutdown()

	if cfg.Metrics.Enabled {
		go serveMetrics(cfg.Metrics.ListenAddress, log)
	}

	resultCache := cache.NewDisabled(log)
	if cfg.Cache.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Address,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := client.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Warn("Redis unavailable, browsing without result cache", map[string]interface{}{
				"address": cfg.Cache.Address,
				"error":   err.Error(),
			})
			client.Close()
		} else {
			defer client.Close()
			resultCache = cache.New(client, cfg.Cache.TTL(), log)
		}
	}

	apiClient := api.NewClient(cfg.Endpoint.BaseURL, cfg.Endpoint.Timeout(), log, obs)

	sess := session.New(apiClient, resultCache, log, cfg.Browse.ItemsPerPage)
	sess.SetListener(render)

	search := searchbar.New(cfg.Search.Debounce(), sess.OnSearch)
	defer search.Close()

	comp := composer.New()

	sess.Start()
	runREPL(sess, search, comp, apiClient, log)

	log.Info("Shutting down", nil)
}

func serveMetrics(addr string, log logger.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Info("Metrics server listening", map[string]interface{}{"address": addr})
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Warn("Metrics server stopped", map[string]interface{}{"error": err.Error()})
	}
}

// runREPL reads commands until EOF, "quit" or an interrupt signal.
func runREPL(sess *session.Session, search *searchbar.Controller, comp *composer.Composer, apiClient *api.Client, log logger.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	fmt.Println(`Commands: search <text> | field <f> | submit | filter <field> <op> <value>
          apply | clearfilters | sort <field> | page <n> | limit <n>
          retry | columns | state | quit`)

	for {
		fmt.Print("> ")
		select {
		case <-sigCh:
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if quit := dispatch(line, sess, search, comp, apiClient, log); quit {
				return
			}
		}
	}
}

func dispatch(line string, sess *session.Session, search *searchbar.Controller, comp *composer.Composer, apiClient *api.Client, log logger.Logger) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "quit", "exit":
		return true
	case "search":
		search.SetText(strings.Join(args, " "))
	case "field":
		if len(args) == 1 {
			search.SetField(roster.SearchField(args[0]))
		}
	case "submit":
		search.Submit()
	case "filter":
		if len(args) < 3 {
			fmt.Println("usage: filter <field> <operator> <value>")
			return false
		}
		rowID := comp.AddRow()
		comp.SetField(rowID, args[0])
		if !comp.SetOperator(rowID, roster.Operator(args[1])) {
			comp.RemoveRow(rowID)
			fmt.Printf("operator %q not allowed for field %q\n", args[1], args[0])
			return false
		}
		comp.SetValue(rowID, strings.Join(args[2:], " "))
		fmt.Printf("%d filter(s) ready to apply\n", len(comp.ValidRows()))
	case "apply":
		sess.OnFilterApply(comp.Apply())
	case "clearfilters":
		comp.ClearAll()
		sess.OnFilterApply(nil)
	case "sort":
		if len(args) == 1 {
			sess.OnSortClick(roster.SortField(args[0]))
		}
	case "page":
		if n, err := strconv.Atoi(strings.Join(args, "")); err == nil {
			sess.OnPageChange(n)
		}
	case "limit":
		n, err := strconv.Atoi(strings.Join(args, ""))
		if err != nil || !allowedPageSize(n) {
			opts := make([]string, 0, len(roster.ItemsPerPageOptions))
			for _, o := range roster.ItemsPerPageOptions {
				opts = append(opts, strconv.Itoa(o))
			}
			fmt.Println("usage: limit <" + strings.Join(opts, "|") + ">")
			return false
		}
		sess.OnItemsPerPageChange(n)
	case "retry":
		sess.Retry()
	case "columns":
		printColumns(apiClient, log)
	case "state":
		render(sess.Snapshot())
	default:
		fmt.Printf("unknown command %q\n", cmd)
	}
	return false
}

func allowedPageSize(n int) bool {
	for _, o := range roster.ItemsPerPageOptions {
		if o == n {
			return true
		}
	}
	return false
}

func printColumns(apiClient *api.Client, log logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	meta, err := apiClient.ColumnMetadata(ctx)
	if err != nil {
		log.Error("Failed to load column metadata", map[string]interface{}{"error": err.Error()})
		return
	}
	for _, col := range meta.Columns {
		fmt.Printf("  %-28s %-10s %s\n", col.Key, col.FieldType, strings.Join(col.Capabilities, ","))
	}
	fmt.Printf("default visible: %s\n", strings.Join(meta.DefaultVisibleColumns, ", "))
}

// render prints the committed state after every fetch.
func render(snap session.Snapshot) {
	if snap.Loading {
		fmt.Println("loading...")
		return
	}
	if snap.Err != nil {
		fmt.Printf("error [%s]: %s", snap.Err.Code, snap.Err.Message)
		if snap.Err.Retryable {
			fmt.Print(" (retry available)")
		}
		fmt.Println()
		return
	}

	for _, p := range snap.Result.Items {
		fmt.Printf("  #%-3d %-28s %-3s %-20s G:%-4d A:%-4d P:%-4d\n",
			p.JerseyNumber, p.Name, p.Position, p.Team.Name, p.Goals, p.Assists, p.Points)
	}
	fmt.Printf("%d players, page %d of %d\n", snap.Result.TotalCount, snap.Query.Page, snap.Result.TotalPages)

	tokens := pagewindow.WindowFor(snap.Query.Page, snap.Result.TotalPages)
	if len(tokens) > 0 {
		labels := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			if !tok.Ellipsis && tok.Page == snap.Query.Page {
				labels = append(labels, "["+tok.String()+"]")
				continue
			}
			labels = append(labels, tok.String())
		}
		fmt.Println("pages: " + strings.Join(labels, " "))
	}
}
