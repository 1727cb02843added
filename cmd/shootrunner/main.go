// Command shootrunner drives a full catalog production run from the
// command line: it walks the selected shot sets for a product, calls
// the generation backend for each shot and writes the results to disk.
// Shots whose output file already exists are skipped, so an aborted run
// can be resumed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"fashion-shot-studio/internal/config"
	"fashion-shot-studio/internal/genclient"
	"fashion-shot-studio/internal/httpclient"
	"fashion-shot-studio/internal/imaging"
	"fashion-shot-studio/internal/reference"
	"fashion-shot-studio/internal/shoot"
)

type runPlan struct {
	name   string
	module shoot.Module
	shots  []shoot.ShotDefinition
	// still-life runs use the product itself as the base image
	productAsBase bool
}

func main() {
	_ = godotenv.Load()

	var (
		basePath    = flag.String("base", "", "base model image path")
		productPath = flag.String("product", "", "product image path")
		outDir      = flag.String("out", "_shoots", "output directory")
		category    = flag.String("category", "dress", "product category")
		modules     = flag.String("modules", "lookbook,campaign,still_life", "comma-separated modules to run")
		delayMS     = flag.Int("delay", 2500, "delay between shots in milliseconds")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *productPath == "" {
		fmt.Fprintln(os.Stderr, "-product is required")
		os.Exit(1)
	}

	client := genclient.New(genclient.Options{
		ProxyURL: cfg.ProxyURL,
		Model:    cfg.Model,
		HTTPClient: httpclient.New(httpclient.Options{
			PreferIPv4:  cfg.PreferIPv4,
			Timeout:     cfg.HTTPTimeout,
			DialTimeout: cfg.DialTimeout,
		}),
		Logger: logger,
	})

	product, err := loadImage(*productPath)
	if err != nil {
		logger.Error("load product image failed", "err", err)
		os.Exit(1)
	}

	var base reference.Image
	if *basePath != "" {
		base, err = loadImage(*basePath)
		if err != nil {
			logger.Error("load base image failed", "err", err)
			os.Exit(1)
		}
	}

	cat := shoot.ProductCategory(*category)
	plans := buildPlans(cat, strings.Split(*modules, ","))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := &runner{
		client:   client,
		logger:   logger,
		outDir:   *outDir,
		category: cat,
		base:     base,
		product:  product,
		delay:    time.Duration(*delayMS) * time.Millisecond,
		timeout:  cfg.RequestTimeout,
	}

	total, failed := 0, 0
	for _, plan := range plans {
		if plan.module != shoot.ModuleStillLife && base.Data == nil {
			logger.Warn("skipping plan: -base is required for model modules", "plan", plan.name)
			continue
		}
		n, f, err := runner.run(ctx, plan)
		total += n
		failed += f
		if err != nil {
			logger.Info("run interrupted", "err", err)
			break
		}
	}

	logger.Info("run finished", "generated", total, "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func buildPlans(category shoot.ProductCategory, modules []string) []runPlan {
	var plans []runPlan
	for _, m := range modules {
		switch shoot.Module(strings.TrimSpace(m)) {
		case shoot.ModuleLookbook:
			plans = append(plans,
				runPlan{
					name:   "lookbook_studio",
					module: shoot.ModuleLookbook,
					shots:  shoot.LookbookShots(category, []shoot.Pack{shoot.PackStandard}, shoot.EnvIndoor),
				},
				runPlan{
					name:   "lookbook_outdoor",
					module: shoot.ModuleLookbook,
					shots:  shoot.LookbookShots(category, []shoot.Pack{shoot.PackStandard}, shoot.EnvOutdoor),
				},
			)
		case shoot.ModuleCampaign:
			plans = append(plans, runPlan{
				name:   "campaign",
				module: shoot.ModuleCampaign,
				shots:  shoot.CampaignShots(),
			})
		case shoot.ModuleStillLife:
			plans = append(plans, runPlan{
				name:          "still_life",
				module:        shoot.ModuleStillLife,
				shots:         shoot.StillLifeShots(category),
				productAsBase: true,
			})
		}
	}
	return plans
}

type runner struct {
	client   *genclient.Client
	logger   *slog.Logger
	outDir   string
	category shoot.ProductCategory
	base     reference.Image
	product  reference.Image
	delay    time.Duration
	timeout  time.Duration
}

func (r *runner) run(ctx context.Context, plan runPlan) (generated, failed int, err error) {
	targetDir := filepath.Join(r.outDir, string(r.category), plan.name)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return 0, 0, err
	}

	for _, def := range plan.shots {
		if err := ctx.Err(); err != nil {
			return generated, failed, err
		}

		outputPath := filepath.Join(targetDir, def.ID+".jpg")
		if _, statErr := os.Stat(outputPath); statErr == nil {
			r.logger.Info("skipped, output exists", "shot", def.ID)
			continue
		}

		r.logger.Info("generating", "plan", plan.name, "shot", def.ID, "name", def.Name)
		if err := r.generateShot(ctx, plan, def, outputPath); err != nil {
			r.logger.Error("shot failed", "shot", def.ID, "err", err)
			failed++
		} else {
			generated++
		}

		select {
		case <-ctx.Done():
			return generated, failed, ctx.Err()
		case <-time.After(r.delay):
		}
	}
	return generated, failed, nil
}

func (r *runner) generateShot(ctx context.Context, plan runPlan, def shoot.ShotDefinition, outputPath string) error {
	baseImage := r.base
	refs := []reference.Object{
		{ID: "base", Image: r.base, Purpose: reference.PurposeBaseModel},
		{ID: "product", Image: r.product, Purpose: reference.PurposeClothingGarment, Description: string(r.category)},
	}
	if plan.productAsBase {
		baseImage = r.product
		refs = []reference.Object{
			{ID: "product", Image: r.product, Purpose: reference.PurposeBaseModel},
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	url, err := r.client.Generate(callCtx, genclient.GenerateRequest{
		BaseImage:   baseImage,
		References:  refs,
		UserPrompt:  def.PromptTemplate,
		AspectRatio: def.AspectRatio,
		Module:      plan.module,
	})
	if err != nil {
		return err
	}

	_, data, err := imaging.DecodeDataURL(url)
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

func loadImage(path string) (reference.Image, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return reference.Image{}, err
	}
	data, mime, err := imaging.Compress(raw)
	if err != nil {
		return reference.Image{}, fmt.Errorf("%s: %w", path, err)
	}
	return reference.Image{Data: data, MIME: mime}, nil
}
