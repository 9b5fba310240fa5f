package usecase

import (
	"generative-media-agent/internal/generation/repository"
	"generative-media-agent/pkg/gemini"
	"generative-media-agent/pkg/imagegen"
	pkgLog "generative-media-agent/pkg/log"
	"generative-media-agent/pkg/videogen"
)

type implUseCase struct {
	l         pkgLog.Logger
	llm       *gemini.Client
	imageGen  *imagegen.Client
	videoGen  *videogen.Client
	repo      repository.MemoryRepository
	uploadDir string
	outputDir string
}

// New creates a new generation UseCase instance.
func New(
	l pkgLog.Logger,
	llm *gemini.Client,
	imageGen *imagegen.Client,
	videoGen *videogen.Client,
	repo repository.MemoryRepository,
	uploadDir string,
	outputDir string,
) *implUseCase {
	return &implUseCase{
		l:         l,
		llm:       llm,
		imageGen:  imageGen,
		videoGen:  videoGen,
		repo:      repo,
		uploadDir: uploadDir,
		outputDir: outputDir,
	}
}
