package ports

import "github.com/aalvaropc/figgy/internal/domain"

// ArtifactStore persists rendered banners.
type ArtifactStore interface {
	SaveArt(a domain.Artifact) (path string, err error)
}
