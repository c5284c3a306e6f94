//go:build !linux

package linkinfo

import (
	"fmt"

	"darwin-nic/internal/port"
	"darwin-nic/internal/types"
)

// ReaderAdapter is a no-op on platforms without ethtool.
type ReaderAdapter struct{}

var _ port.LinkInfoReader = (*ReaderAdapter)(nil)

func NewReaderAdapter() (*ReaderAdapter, error) {
	return nil, fmt.Errorf("ethtool: %w", types.ErrUnsupportedPlatform)
}

func (r *ReaderAdapter) Close() {}

func (r *ReaderAdapter) LinkInfo(interfaceName string) (types.LinkInfo, error) {
	return types.LinkInfo{}, fmt.Errorf("ethtool: %w", types.ErrUnsupportedPlatform)
}
