package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"jalmitra/internal/api"
	"jalmitra/internal/config"
	"jalmitra/internal/db"
	"jalmitra/internal/docs"
	"jalmitra/internal/engine"
	"jalmitra/internal/grievance"
	"jalmitra/internal/ollama"
	"jalmitra/internal/rag"
	"jalmitra/internal/ratings"
	redisdb "jalmitra/internal/redis"
)

// knowledgeBase ties the docs directory to the search index and the
// answer cache so the admin reload endpoint can refresh both.
type knowledgeBase struct {
	dir       string
	chunkSize int
	overlap   int
	index     *rag.Index
	cache     *rag.Cache
}

func (k *knowledgeBase) load() ([]rag.Chunk, error) {
	loaded, err := docs.LoadDir(k.dir)
	if err != nil {
		return nil, err
	}
	var chunks []rag.Chunk
	for _, d := range loaded {
		for _, part := range rag.Split(d.Text, k.chunkSize, k.overlap) {
			chunks = append(chunks, rag.Chunk{Text: part, Source: d.Source})
		}
	}
	return chunks, nil
}

func (k *knowledgeBase) Reload() (int, error) {
	chunks, err := k.load()
	if err != nil {
		return 0, err
	}
	if err := k.index.Rebuild(chunks); err != nil {
		return 0, err
	}
	k.cache.Clear()
	log.Printf("[Main] Knowledge base reloaded: %d chunks", k.index.Len())
	return k.index.Len(), nil
}

// fallbackChunks keeps the service bootable when the docs directory is
// missing or empty. The relevance gate refuses almost everything until
// real documents are loaded via the reload endpoint.
func fallbackChunks() []rag.Chunk {
	return []rag.Chunk{{
		Text:   "Jal Mitra answers questions about water supply grievances, registration and government water schemes.",
		Source: "builtin",
	}}
}

func main() {
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := db.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	rdb := redisdb.NewClient(cfg)

	overlap := cfg.Knowledge.ChunkOverlap
	if overlap <= 0 {
		overlap = rag.DefaultOverlap(cfg.Knowledge.ChunkSize)
	}
	kb := &knowledgeBase{
		dir:       cfg.Knowledge.DocsDir,
		chunkSize: cfg.Knowledge.ChunkSize,
		overlap:   overlap,
		cache:     rag.NewCache(cfg.Knowledge.CacheSize),
	}
	chunks, err := kb.load()
	if err != nil {
		log.Printf("[Main] WARNING: knowledge base unavailable (%v), starting degraded", err)
		chunks = fallbackChunks()
	}
	index, err := rag.Build(chunks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Index build error: %v\n", err)
		os.Exit(1)
	}
	kb.index = index
	log.Printf("[Main] Indexed %d chunks from %s", index.Len(), cfg.Knowledge.DocsDir)

	breaker := ollama.NewBreaker(3, 30*time.Second)
	client := ollama.NewClient(cfg.Ollama.URL, cfg.Ollama.Model,
		time.Duration(cfg.Ollama.TimeoutSeconds)*time.Second, breaker)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if models, err := client.Ping(ctx); err != nil {
		log.Printf("[Main] WARNING: Ollama not reachable at %s: %v", cfg.Ollama.URL, err)
	} else {
		log.Printf("[Main] Ollama up, %d models available", len(models))
	}
	cancel()

	pipeline, err := rag.New(index, kb.cache, client,
		ollama.DefaultRetryPolicy(cfg.Ollama.MaxRetries), rag.Config{
			TopK:               cfg.Knowledge.TopK,
			RelevanceThreshold: cfg.Knowledge.RelevanceThreshold,
			Timeout:            time.Duration(cfg.Ollama.TimeoutSeconds) * time.Second,
			Temperature:        cfg.Ollama.Temperature,
			MaxTokens:          cfg.Ollama.MaxTokens,
		})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Pipeline error: %v\n", err)
		os.Exit(1)
	}

	sessionTTL := time.Duration(cfg.Chat.SessionTTLHours) * time.Hour
	store := engine.NewRedisStore(rdb, sessionTTL)
	limiter := engine.NewRateLimiter(time.Duration(cfg.Chat.CooldownSeconds) * time.Second)
	grievances := grievance.NewRepository(db.DB)
	ratingStore := ratings.NewStore(db.DB)

	eng, err := engine.New(store, limiter, pipeline, grievances, ratingStore)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Engine error: %v\n", err)
		os.Exit(1)
	}

	deps := api.Deps{
		Chat:       eng,
		History:    engine.NewHistory(rdb, cfg.Chat.HistoryLimit, sessionTTL),
		Grievances: grievances,
		Ratings:    ratingStore,
		Index:      index,
		Breaker:    breaker,
		Reloader:   kb,
		Redis:      rdb,
	}

	r := api.SetupRouter(cfg, deps)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("Starting server on %s%s\n", addr, cfg.Server.Subpath)
	if err := r.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
