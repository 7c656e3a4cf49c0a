// Package main is the matchctl CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/matchllm/matchctl/internal/api"
	"github.com/matchllm/matchctl/internal/cli"
	"github.com/matchllm/matchctl/internal/config"
	"github.com/matchllm/matchctl/internal/export"
	"github.com/matchllm/matchctl/internal/history"
	"github.com/matchllm/matchctl/internal/keyword"
	"github.com/matchllm/matchctl/internal/match"
	"github.com/matchllm/matchctl/internal/server"
	"github.com/matchllm/matchctl/internal/session"
	"github.com/matchllm/matchctl/internal/uploader"
	"github.com/matchllm/matchctl/internal/watcher"
	"github.com/matchllm/matchctl/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/matchctl/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used. Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "login":
		runLogin()
	case "register":
		runRegister()
	case "whoami":
		runWhoami()
	case "logout":
		runLogout()
	case "produtos":
		runProdutos()
	case "editais":
		runEditais()
	case "match":
		runMatch()
	case "history":
		runHistory()
	case "watch":
		runWatch()
	case "serve":
		runServe()
	case "version", "--version", "-v":
		fmt.Printf("matchctl version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// setup loads config, builds the logger and the API client.
func setup(configPath string, debug bool) (*config.Config, *api.Client, *session.Store, *zap.Logger) {
	cfg, _, err := loadConfig(configPath)
	if err != nil {
		fatalf("Failed to load config: %v", err)
	}
	logger, err := utils.NewLogger(cfg.Debug || debug)
	if err != nil {
		fatalf("Failed to create logger: %v", err)
	}
	sess := session.NewStore(cfg.Storage.SessionPath)
	client := api.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second, sess, logger)
	return cfg, client, sess, logger
}

func runLogin() {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(os.Args[2:])
	if *email == "" || *password == "" {
		fatalf("Usage: matchctl login -email <email> -password <password>")
	}

	_, client, _, logger := setup(*configPath, false)
	defer logger.Sync()
	if _, err := client.Login(context.Background(), *email, *password); err != nil {
		fatalf("Login falhou: %v", err)
	}
	fmt.Printf("Autenticado como %s.\n", *email)
}

func runRegister() {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(os.Args[2:])
	if *email == "" || *password == "" {
		fatalf("Usage: matchctl register -email <email> -password <password>")
	}

	_, client, _, logger := setup(*configPath, false)
	defer logger.Sync()
	user, err := client.Register(context.Background(), *email, *password)
	if err != nil {
		fatalf("Registro falhou: %v", err)
	}
	fmt.Printf("Conta criada: %s (id %d). Use 'matchctl login' para autenticar.\n", user.Email, user.ID)
}

func runWhoami() {
	fs := flag.NewFlagSet("whoami", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	_ = fs.Parse(os.Args[2:])

	_, client, _, logger := setup(*configPath, false)
	defer logger.Sync()
	user, err := client.Me(context.Background())
	if err != nil {
		fatalf("Não autenticado: %v", err)
	}
	fmt.Printf("%s (id %d)\n", user.Email, user.ID)
}

func runLogout() {
	fs := flag.NewFlagSet("logout", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	_ = fs.Parse(os.Args[2:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fatalf("Failed to load config: %v", err)
	}
	sess := session.NewStore(cfg.Storage.SessionPath)
	if err := sess.Clear(); err != nil {
		fatalf("Logout falhou: %v", err)
	}
	fmt.Println("Sessão encerrada.")
}

func runProdutos() {
	if len(os.Args) < 3 {
		fatalf("Usage: matchctl produtos <list|add|upload> [flags]")
	}
	sub := os.Args[2]
	fs := flag.NewFlagSet("produtos "+sub, flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	outputFormat := fs.String("output", "text", "output format: text or json")
	nome := fs.String("nome", "", "product name (add)")
	atributos := fs.String("atributos", "{}", "product attributes as JSON (add)")
	_ = fs.Parse(os.Args[3:])

	format, err := cli.ParseFormat(*outputFormat)
	if err != nil {
		fatalf("%v", err)
	}
	_, client, _, logger := setup(*configPath, false)
	defer logger.Sync()
	ctx := context.Background()

	switch sub {
	case "list":
		produtos, err := client.ListProdutos(ctx)
		if err != nil {
			fatalf("Falha ao listar produtos: %v", err)
		}
		_ = cli.WriteProdutos(os.Stdout, produtos, format)
	case "add":
		if *nome == "" {
			fatalf("Usage: matchctl produtos add -nome <nome> [-atributos <json>]")
		}
		// Attribute JSON is validated before any request goes out.
		var attrs map[string]interface{}
		if err := json.Unmarshal([]byte(*atributos), &attrs); err != nil {
			fatalf("Atributos inválidos (JSON malformado): %v", err)
		}
		created, err := client.CreateProdutoJSON(ctx, match.Produto{Nome: *nome, Atributos: attrs})
		if err != nil {
			fatalf("Falha ao criar produto: %v", err)
		}
		fmt.Printf("Produto criado: %s\n", string(created))
	case "upload":
		if fs.NArg() < 1 {
			fatalf("Usage: matchctl produtos upload <datasheet.pdf>")
		}
		path := fs.Arg(0)
		data, err := os.ReadFile(path)
		if err != nil {
			fatalf("Falha ao ler arquivo: %v", err)
		}
		if err := uploader.ValidatePDF(data); err != nil {
			fatalf("Arquivo inválido: %v", err)
		}
		resp, err := client.UploadProdutoPDF(ctx, filepath.Base(path), data)
		if err != nil {
			fatalf("Falha no upload: %v", err)
		}
		if resp.Message != "" {
			fmt.Println(resp.Message)
		} else {
			fmt.Println("Datasheet enviado.")
		}
	default:
		fatalf("Unknown produtos subcommand: %s", sub)
	}
}

func runEditais() {
	if len(os.Args) < 3 {
		fatalf("Usage: matchctl editais <ids|upload> [flags]")
	}
	sub := os.Args[2]
	fs := flag.NewFlagSet("editais "+sub, flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	_ = fs.Parse(os.Args[3:])

	_, client, _, logger := setup(*configPath, false)
	defer logger.Sync()
	ctx := context.Background()

	switch sub {
	case "ids":
		ids, err := client.EditalIDs(ctx)
		if err != nil {
			fatalf("Falha ao listar editais: %v", err)
		}
		if len(ids) == 0 {
			fmt.Println("Nenhum edital indexado.")
			return
		}
		for _, id := range ids {
			fmt.Println(id)
		}
	case "upload":
		if fs.NArg() < 1 {
			fatalf("Usage: matchctl editais upload <edital.pdf> [mais.pdf ...]")
		}
		batch := uploader.NewBatch(client, logger)
		ids, err := batch.UploadEditais(ctx, fs.Args())
		for _, id := range ids {
			fmt.Printf("Edital %d indexado.\n", id)
		}
		if err != nil {
			fatalf("Falha no upload: %v", err)
		}
	default:
		fatalf("Unknown editais subcommand: %s", sub)
	}
}

// parseEditalIDs parses a comma-separated id list like "1,2,3".
func parseEditalIDs(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid edital id %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func runMatch() {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	nome := fs.String("nome", "", "product name")
	atributos := fs.String("atributos", "{}", "product attributes as JSON")
	editais := fs.String("editais", "", "comma-separated edital ids (empty = all indexed)")
	model := fs.String("model", "", "override backend model")
	useRequisitos := fs.Bool("use-requisitos", true, "match against extracted requirements")
	email := fs.String("email", "", "ask the backend to email the result to this address")
	sendTo := fs.String("send-to", "", "email the exported XLSX to this address after the run")
	csvOut := fs.Bool("csv", false, "export result as CSV")
	xlsxOut := fs.Bool("xlsx", false, "export result as XLSX")
	jsonOut := fs.Bool("json", false, "export raw result as JSON")
	outputFormat := fs.String("output", "text", "output format: text or json")
	debug := fs.Bool("debug", false, "enable debug logging")
	fs.Usage = func() { printMatchUsage(fs) }
	_ = fs.Parse(os.Args[2:])

	if *nome == "" || fs.NArg() < 1 {
		printMatchUsage(fs)
		os.Exit(1)
	}
	consulta := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if consulta == "" {
		printMatchUsage(fs)
		os.Exit(1)
	}
	format, err := cli.ParseFormat(*outputFormat)
	if err != nil {
		fatalf("%v", err)
	}
	// Attribute JSON is validated before any request goes out.
	var attrs map[string]interface{}
	if err := json.Unmarshal([]byte(*atributos), &attrs); err != nil {
		fatalf("Atributos inválidos (JSON malformado): %v", err)
	}
	ids, err := parseEditalIDs(*editais)
	if err != nil {
		fatalf("%v", err)
	}

	cfg, client, _, logger := setup(*configPath, *debug)
	defer logger.Sync()
	ctx := context.Background()

	if len(ids) == 0 {
		ids, err = client.EditalIDs(ctx)
		if err != nil {
			fatalf("Falha ao listar editais: %v", err)
		}
		if len(ids) == 0 {
			fatalf("Nenhum edital indexado; envie um com 'matchctl editais upload'.")
		}
	}

	req := match.MatchMultipleRequest{
		Produto:       match.Produto{Nome: *nome, Atributos: attrs},
		EditalIDs:     ids,
		Consulta:      consulta,
		Model:         *model,
		UseRequisitos: *useRequisitos,
		Email:         *email,
	}
	resp, err := client.MatchMultiple(ctx, req)
	if err != nil {
		fatalf("Match falhou: %v", err)
	}

	archiveRun(ctx, cfg, logger, consulta, *nome, resp)

	if err := cli.WriteMatchResult(os.Stdout, resp, format); err != nil {
		fatalf("Output failed: %v", err)
	}

	if *csvOut {
		rows := match.AllRows(resp.Results)
		data := export.CSV(match.Records(rows), match.Columns)
		saveExport(cfg, "resultado_match.csv", []byte(data))
	}
	var workbook []byte
	if *xlsxOut || *sendTo != "" {
		workbook, err = buildWorkbook(resp)
		if err != nil {
			fatalf("Falha ao montar XLSX: %v", err)
		}
	}
	if *xlsxOut {
		saveExport(cfg, "resultado_match.xlsx", workbook)
	}
	if *jsonOut {
		data, err := export.JSON(resp)
		if err != nil {
			fatalf("Falha ao serializar JSON: %v", err)
		}
		saveExport(cfg, "resultado_match.json", data)
	}
	if *sendTo != "" {
		err := client.SendEmail(ctx, *sendTo, cfg.Email.Subject, cfg.Email.Body, "resultado_match.xlsx", workbook)
		if err != nil {
			fatalf("Falha no envio de email: %v", err)
		}
		fmt.Printf("Resultado enviado para %s.\n", *sendTo)
	}
}

func printMatchUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: matchctl match -nome <produto> [flags] <consulta>\n\n")
	fmt.Fprintf(fs.Output(), "Consulta is all remaining arguments joined by spaces.\n\n")
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
Examples:
  matchctl match -nome "Switch X24" switch 24 portas poe
  matchctl match -nome "Switch X24" -atributos '{"portas":24}' -editais 1,3 -xlsx consulta
  matchctl match -nome "Switch X24" -send-to compras@empresa.com.br consulta
`)
}

// archiveRun persists the run locally and indexes it for keyword search.
// Failures are logged, never fatal: the match result itself already exists.
func archiveRun(ctx context.Context, cfg *config.Config, logger *zap.Logger, consulta, produto string, resp *match.MatchMultipleResponse) {
	if cfg.Storage.HistoryPath == "" {
		return
	}
	store, err := history.NewStore(cfg.Storage.HistoryPath)
	if err != nil {
		logger.Warn("history store unavailable", zap.Error(err))
		return
	}
	defer store.Close()
	run := &history.Run{Consulta: consulta, Produto: produto, Response: *resp}
	if err := store.Save(ctx, run); err != nil {
		logger.Warn("failed to archive run", zap.Error(err))
		return
	}
	if cfg.Storage.KeywordIndexPath != "" {
		idx, err := keyword.NewIndex(cfg.Storage.KeywordIndexPath)
		if err != nil {
			logger.Warn("keyword index unavailable", zap.Error(err))
			return
		}
		defer idx.Close()
		if err := idx.IndexRun(run); err != nil {
			logger.Warn("failed to index run", zap.Error(err))
		}
	}
	logger.Info("run archived", zap.String("run_id", run.ID))
}

func buildWorkbook(resp *match.MatchMultipleResponse) ([]byte, error) {
	sheets := make([]export.Sheet, 0, len(resp.Results))
	for _, result := range resp.Results {
		sheets = append(sheets, export.Sheet{
			Name:    fmt.Sprintf("Edital %d", result.EditalID),
			Columns: match.Columns,
			Rows:    match.Records(match.Rows(result)),
		})
	}
	return export.Workbook(sheets)
}

func saveExport(cfg *config.Config, filename string, data []byte) {
	path, err := export.Save(cfg.Export.Directory, filename, data)
	if err != nil {
		fatalf("Falha ao salvar %s: %v", filename, err)
	}
	fmt.Printf("Exportado: %s\n", path)
}

func runHistory() {
	if len(os.Args) < 3 {
		fatalf("Usage: matchctl history <list|show|search|export> [flags]")
	}
	sub := os.Args[2]
	fs := flag.NewFlagSet("history "+sub, flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	outputFormat := fs.String("output", "text", "output format: text or json")
	offset := fs.Int("offset", 0, "list offset")
	limit := fs.Int("limit", 20, "list limit")
	csvOut := fs.Bool("csv", false, "export run as CSV")
	xlsxOut := fs.Bool("xlsx", false, "export run as XLSX")
	jsonOut := fs.Bool("json", false, "export run as JSON")
	_ = fs.Parse(os.Args[3:])

	format, err := cli.ParseFormat(*outputFormat)
	if err != nil {
		fatalf("%v", err)
	}
	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fatalf("Failed to load config: %v", err)
	}
	ctx := context.Background()

	openHistory := func() *history.Store {
		store, err := history.NewStore(cfg.Storage.HistoryPath)
		if err != nil {
			fatalf("Falha ao abrir histórico: %v", err)
		}
		return store
	}

	switch sub {
	case "list":
		store := openHistory()
		defer store.Close()
		runs, err := store.List(ctx, *offset, *limit)
		if err != nil {
			fatalf("Falha ao listar runs: %v", err)
		}
		_ = cli.WriteRuns(os.Stdout, runs, format)
	case "show":
		if fs.NArg() < 1 {
			fatalf("Usage: matchctl history show <run-id>")
		}
		store := openHistory()
		defer store.Close()
		run, err := store.Get(ctx, fs.Arg(0))
		if err != nil {
			fatalf("%v", err)
		}
		_ = cli.WriteMatchResult(os.Stdout, &run.Response, format)
	case "search":
		if fs.NArg() < 1 {
			fatalf("Usage: matchctl history search <termos>")
		}
		idx, err := keyword.NewIndex(cfg.Storage.KeywordIndexPath)
		if err != nil {
			fatalf("Falha ao abrir índice: %v", err)
		}
		defer idx.Close()
		query := strings.Join(fs.Args(), " ")
		results, err := idx.Search(query, *limit)
		if err != nil {
			fatalf("Busca falhou: %v", err)
		}
		_ = cli.WriteSearchResults(os.Stdout, results, format)
	case "export":
		if fs.NArg() < 1 {
			fatalf("Usage: matchctl history export [-csv|-xlsx|-json] <run-id>")
		}
		if !*csvOut && !*xlsxOut && !*jsonOut {
			fatalf("Escolha ao menos um formato: -csv, -xlsx ou -json")
		}
		store := openHistory()
		defer store.Close()
		run, err := store.Get(ctx, fs.Arg(0))
		if err != nil {
			fatalf("%v", err)
		}
		base := "run_" + run.ID
		if *csvOut {
			rows := match.AllRows(run.Response.Results)
			data := export.CSV(match.Records(rows), match.Columns)
			saveExport(cfg, base+".csv", []byte(data))
		}
		if *xlsxOut {
			workbook, err := buildWorkbook(&run.Response)
			if err != nil {
				fatalf("Falha ao montar XLSX: %v", err)
			}
			saveExport(cfg, base+".xlsx", workbook)
		}
		if *jsonOut {
			data, err := export.JSON(run.Response)
			if err != nil {
				fatalf("Falha ao serializar JSON: %v", err)
			}
			saveExport(cfg, base+".json", data)
		}
	default:
		fatalf("Unknown history subcommand: %s", sub)
	}
}

func runWatch() {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	save := fs.Bool("save", false, "persist the watched directories to the config file")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fatalf("Failed to load config: %v", err)
	}
	logger, err := utils.NewLogger(cfg.Debug || *debug)
	if err != nil {
		fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()
	sess := session.NewStore(cfg.Storage.SessionPath)
	client := api.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second, sess, logger)

	dirs := cfg.Watch.Directories
	if fs.NArg() > 0 {
		dirs = fs.Args()
	}
	if len(dirs) == 0 {
		fatalf("Nenhum diretório para observar; configure watch.directories ou passe caminhos.")
	}
	if *save {
		cfg.Watch.Directories = dirs
		if err := config.Save(resolvedConfigPath, cfg); err != nil {
			logger.Warn("failed to persist watch config", zap.Error(err))
		}
	}

	batch := uploader.NewBatch(client, logger)
	onPDF := func(path string) {
		ids, err := batch.UploadEditais(context.Background(), []string{path})
		if err != nil {
			logger.Warn("watch upload failed", zap.String("path", path), zap.Error(err))
			return
		}
		for _, id := range ids {
			fmt.Printf("Edital %d indexado (%s).\n", id, filepath.Base(path))
		}
	}
	opts := []watcher.Option{}
	if cfg.Debug || *debug {
		opts = append(opts, watcher.WithLogger(logger))
	}
	w := watcher.NewWatcher(dirs, cfg.Watch.RecursiveOrDefault(), onPDF, opts...)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		fatalf("Falha ao iniciar watcher: %v", err)
	}
	w.SyncExistingFiles()
	fmt.Printf("Observando %s. Ctrl-C para sair.\n", strings.Join(w.Directories(), ", "))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	w.Stop()
}

func runServe() {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fatalf("Failed to load config: %v", err)
	}
	logger, err := utils.NewLogger(cfg.Debug || *debug)
	if err != nil {
		fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	var hist *history.Store
	if cfg.Storage.HistoryPath != "" {
		hist, err = history.NewStore(cfg.Storage.HistoryPath)
		if err != nil {
			logger.Fatal("Failed to open history store", zap.Error(err))
		}
		defer hist.Close()
	}
	var idx *keyword.Index
	if cfg.Storage.KeywordIndexPath != "" {
		idx, err = keyword.NewIndex(cfg.Storage.KeywordIndexPath)
		if err != nil {
			logger.Fatal("Failed to open keyword index", zap.Error(err))
		}
		defer idx.Close()
	}

	state := server.NewRunState()
	seedRunState(state, hist, logger)

	srv := server.NewServer(state, hist, idx, &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// seedRunState preloads the dashboard with the newest archived run so it has
// data before the first live match.
func seedRunState(state *server.RunState, hist *history.Store, logger *zap.Logger) {
	if hist == nil {
		return
	}
	runs, err := hist.List(context.Background(), 0, 1)
	if err != nil || len(runs) == 0 {
		return
	}
	gen := state.Begin()
	state.Complete(gen, runs[0].Consulta, runs[0].Response)
	logger.Info("dashboard seeded from archive", zap.String("run_id", runs[0].ID))
}

func printUsage() {
	fmt.Print(`matchctl - match de produtos contra editais de licitação

Usage:
  matchctl <command> [flags]

Commands:
  login       Autenticar no backend (-email, -password)
  register    Criar conta (-email, -password)
  whoami      Mostrar usuário autenticado
  logout      Encerrar a sessão local
  produtos    list | add | upload - gerenciar produtos
  editais     ids | upload - listar e enviar editais (PDF)
  match       Rodar o match e imprimir o resumo executivo
  history     list | show | search | export - runs arquivados
  watch       Observar diretórios e enviar PDFs automaticamente
  serve       Servir o dashboard local (JSON)
  version     Mostrar a versão
  help        Mostrar esta ajuda

Use "matchctl <command> -h" for command flags.
`)
}
