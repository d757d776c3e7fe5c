package maintenance

import (
	"context"
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/node"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/repository/ledgerdb"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	MasterNodeSource interface {
		GetMasterNodes(ctx context.Context) ([]node.MasterNode, error)
	}
	AdnrReplayer interface {
		ReplayAdnrs(ctx context.Context, store *ledgerdb.Store) (int, error)
	}
	Metrics interface {
		ObserveJob(job string, err error, started time.Time)
	}
)
