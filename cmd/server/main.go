package main

import (
	"log"

	"github.com/epikoding/lexigraph/internal/config"
	"github.com/epikoding/lexigraph/internal/handler"
	"github.com/epikoding/lexigraph/internal/images"
	"github.com/epikoding/lexigraph/internal/langdetect"
	"github.com/epikoding/lexigraph/internal/llm"
	"github.com/epikoding/lexigraph/internal/middleware"
	"github.com/epikoding/lexigraph/internal/stt"
	"github.com/epikoding/lexigraph/internal/tts"
	"github.com/epikoding/lexigraph/internal/wordlist"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg := config.Load()

	if cfg.OpenRouterAPIKey == "" {
		log.Println("Warning: OPENROUTER_API_KEY is not set, LLM-backed endpoints will fail")
	}
	if cfg.PexelsAPIKey == "" {
		log.Println("Warning: PEXELS_API_KEY is not set, image search runs unauthenticated")
	}

	llmClient := llm.NewClient(cfg.OpenRouterURL, cfg.OpenRouterAPIKey, cfg.LLMModel, cfg.Referer, cfg.AppTitle)
	imageClient := images.NewClient(cfg.PexelsURL, cfg.PexelsAPIKey)
	detector := langdetect.NewDetector()
	words := wordlist.Load("data/wordfreq_en.txt")
	transcriber := stt.NewTranscriber(cfg.WhisperBinary, cfg.WhisperModel)

	// Provider order is fixed: neural first, generic second, paid last.
	ttsChain := tts.NewChain(
		tts.NewEdgeProvider(),
		tts.NewGTTSProvider(),
		tts.NewOpenAIProvider(cfg.OpenAIURL, cfg.OpenAIAPIKey),
	)

	dictionaryHandler := handler.NewDictionaryHandler(llmClient, imageClient, words)
	chatHandler := handler.NewChatHandler(llmClient)
	analyzeHandler := handler.NewAnalyzeHandler(llmClient)
	grammarHandler := handler.NewGrammarHandler(llmClient)
	readerHandler := handler.NewReaderHandler()
	ttsHandler := handler.NewTTSHandler(detector, ttsChain)
	transcribeHandler := handler.NewTranscribeHandler(transcriber)
	imagesHandler := handler.NewImagesHandler(imageClient)

	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	r.Use(middleware.MetricsMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/dictionary", dictionaryHandler.Lookup)
		api.POST("/chat", chatHandler.Chat)
		api.POST("/analyze", analyzeHandler.Analyze)
		api.POST("/fix_grammar", grammarHandler.FixGrammar)
		api.POST("/reader_format", readerHandler.Format)
		api.POST("/tts", ttsHandler.Speak)
		api.POST("/pronounce", ttsHandler.Speak)
		api.POST("/transcribe", transcribeHandler.Transcribe)
		api.GET("/wotd", dictionaryHandler.WordOfDay)
		api.GET("/images", imagesHandler.Search)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
