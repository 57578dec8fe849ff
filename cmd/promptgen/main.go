// Command promptgen runs the image-to-prompt pipeline against a local file,
// for trying prompts without the web UI.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/joho/godotenv"

	"picprompt/internal/catalog"
	"picprompt/internal/domain"
	"picprompt/internal/infra"
	"picprompt/internal/prompt"
	"picprompt/internal/textgen"
	"picprompt/internal/vision"
)

func main() {
	imagePath := flag.String("image", "", "path to a png or jpeg image (required)")
	style := flag.String("style", "", "style for the composed prompt")
	artist := flag.String("artist", "", "artist for the composed prompt")
	modifiers := flag.String("modifiers", "", "free-text modifiers appended to the prompt")
	instruction := flag.String("instruction", "", "instruction text prefixed to the prompt")
	temperature := flag.Float64("temperature", domain.DefaultTemperature, "sampling temperature")
	topP := flag.Float64("top-p", domain.DefaultTopP, "nucleus sampling cutoff")
	maxTokens := flag.Int("max-tokens", domain.DefaultMaxTokens, "maximum generated tokens")
	provider := flag.String("provider", "", "override TEXTGEN_PROVIDER (gemini or openai)")
	composeOnly := flag.Bool("compose-only", false, "stop after composing the prompt")
	flag.Parse()

	if *imagePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		fatal(err)
	}
	if *provider != "" {
		cfg.TextProvider = *provider
	}
	logger := infra.NewLogger(cfg.AppEnv)

	data, err := os.ReadFile(*imagePath)
	if err != nil {
		fatal(fmt.Errorf("read image: %w", err))
	}
	image := domain.Image{Data: data, MIMEType: http.DetectContentType(data), Name: *imagePath}

	params := domain.GenerationParams{
		Temperature: *temperature,
		TopP:        *topP,
		MaxTokens:   *maxTokens,
		Style:       catalog.NormalizeStyle(*style),
		Artist:      catalog.NormalizeArtist(*artist),
		Modifiers:   *modifiers,
		Instruction: *instruction,
	}
	if err := params.Validate(); err != nil {
		fatal(err)
	}

	ctx := context.Background()
	awsCfg, err := loadAWSConfig(ctx, cfg.AWSRegion)
	if err != nil {
		fatal(err)
	}
	detector := vision.NewRekognitionDetector(rekognition.NewFromConfig(awsCfg), vision.RekognitionOptions{
		MaxLabels:     cfg.LabelMax,
		MinConfidence: cfg.LabelMinConfidence,
	})

	labels, err := detector.DetectLabels(ctx, image)
	if err != nil {
		fatal(err)
	}
	for _, l := range labels {
		logger.Debug().Str("label", l.Name).Float64("confidence", l.Confidence).Msg("detected")
	}

	composed := prompt.Compose(labels, params, prompt.Options{
		TopK:     cfg.LabelMax,
		MaxChars: cfg.PromptMaxChars,
	})
	fmt.Println("prompt:", composed)
	if *composeOnly {
		return
	}

	generator, err := newGenerator(cfg)
	if err != nil {
		fatal(err)
	}
	text, err := generator.Generate(ctx, prompt.WithInstruction(params.Instruction, composed), params)
	if err != nil {
		fatal(err)
	}
	fmt.Println(text)
}

func loadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	if region != "" {
		return awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	}
	return awsconfig.LoadDefaultConfig(ctx)
}

func newGenerator(cfg *infra.Config) (textgen.Generator, error) {
	switch cfg.TextProvider {
	case textgen.ProviderGemini:
		return textgen.NewGeminiGenerator(textgen.GeminiOptions{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
		})
	case textgen.ProviderOpenAI:
		return textgen.NewOpenAIGenerator(textgen.OpenAIOptions{
			APIKey:       cfg.OpenAIAPIKey,
			Model:        cfg.OpenAIModel,
			BaseURL:      cfg.OpenAIBaseURL,
			Organization: cfg.OpenAIOrg,
		})
	default:
		return nil, fmt.Errorf("unsupported provider %q", cfg.TextProvider)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "promptgen:", err)
	os.Exit(1)
}
