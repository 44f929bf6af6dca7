package usecase

import (
	"github.com/aalvaropc/figgy/internal/domain"
	"github.com/aalvaropc/figgy/internal/ports"
)

type SaveBanner struct {
	store ports.ArtifactStore
}

func NewSaveBanner(store ports.ArtifactStore) *SaveBanner {
	return &SaveBanner{store: store}
}

// Execute writes art under the font's name and returns the file path.
func (uc *SaveBanner) Execute(art string, font domain.FontName) (string, error) {
	if art == "" {
		return "", domain.ErrNothingToSave
	}
	return uc.store.SaveArt(domain.Artifact{Art: art, Font: font})
}
