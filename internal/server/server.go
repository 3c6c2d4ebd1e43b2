package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/maramilod/alx-backend/internal/cache"
	"github.com/maramilod/alx-backend/internal/config"
	"github.com/maramilod/alx-backend/internal/realtime"
)

const shutdownTimeout = 10 * time.Second

// BuildCaches creates one cache per configured entry, all with MaxItems
// capacity. DISCARD lines go to notify and every eviction is also published
// on the hub under the cache's name.
func BuildCaches(cfg *config.ServerConfig, hub *realtime.Hub, notify io.Writer) (*cache.Registry[string, string], error) {
	registry := cache.NewRegistry[string, string]()
	for _, cc := range cfg.Caches {
		c, err := cache.New(cache.Options[string, string]{
			Capacity:        cfg.MaxItems,
			Policy:          cc.Policy,
			ConcurrencySafe: true,
			Notify:          notify,
			OnEvicted:       realtime.EvictionPublisher(hub, cc.Name),
		})
		if err != nil {
			return nil, fmt.Errorf("cache %q: %w", cc.Name, err)
		}
		if err := registry.Register(cc.Name, c); err != nil {
			return nil, err
		}
		log.Printf("cache %q ready: policy=%s max_items=%d", cc.Name, cc.Policy, cfg.MaxItems)
	}
	return registry, nil
}

// Run serves handler on addr until ctx is canceled, then shuts down gracefully.
func Run(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Println("Server is shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
