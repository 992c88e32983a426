package http

import (
	"context"
	"net/http"

	"github.com/buildbarn/bb-path-grammar/pkg/program"
	"github.com/buildbarn/bb-path-grammar/pkg/util"
)

// NewServersAndServe spawns HTTP servers as part of a program.Group,
// one for every listen address. The servers are automatically
// terminated if the context associated with the group is canceled.
func NewServersAndServe(listenAddresses []string, handler http.Handler, group program.Group) {
	for _, listenAddress := range listenAddresses {
		server := &http.Server{
			Addr:    listenAddress,
			Handler: handler,
		}
		group.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
			<-ctx.Done()
			return server.Close()
		})
		group.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
			if err := server.ListenAndServe(); err != http.ErrServerClosed {
				return util.StatusWrapf(err, "Failed to launch HTTP server %#v", server.Addr)
			}
			return nil
		})
	}
}
