package filesystem

import (
	"context"
)

// Provider bundles the path resolver with every filesystem operation group
type Provider struct {
	*Resolver
	basic     *BasicOps
	directory *DirectoryOps
	search    *SearchOps
}

// NewProvider creates a provider rooted at root ("" = working directory).
// obs may be nil.
func NewProvider(root string, obs Observer) (*Provider, error) {
	resolver, err := NewResolver(root)
	if err != nil {
		return nil, err
	}

	ops := &FilesystemOps{Observer: obs}
	return &Provider{
		Resolver:  resolver,
		basic:     &BasicOps{FilesystemOps: ops},
		directory: &DirectoryOps{FilesystemOps: ops},
		search:    &SearchOps{FilesystemOps: ops},
	}, nil
}

func (p *Provider) List(ctx context.Context, dir string) ([]string, error) {
	return p.directory.List(ctx, dir)
}

func (p *Provider) CreateDirectory(ctx context.Context, dir string) error {
	return p.directory.Create(ctx, dir)
}

func (p *Provider) CreateFile(ctx context.Context, path, data string) error {
	return p.basic.Create(ctx, path, data)
}

func (p *Provider) ReadFile(ctx context.Context, path string) (string, error) {
	return p.basic.Read(ctx, path)
}

func (p *Provider) UpdateFile(ctx context.Context, path, data string) error {
	return p.basic.Update(ctx, path, data)
}

func (p *Provider) Delete(ctx context.Context, path string) error {
	return p.basic.Delete(ctx, path)
}

// Search looks for term below the provider root
func (p *Provider) Search(ctx context.Context, term string) ([]string, error) {
	return p.search.Search(ctx, term, p.Root())
}
