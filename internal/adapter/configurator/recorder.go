package configurator

import (
	"context"
	"fmt"
	"sync"

	"darwin-nic/internal/port"
	"darwin-nic/internal/types"
)

// recordingCommander logs every mutation as an Action. In projection mode
// mutations are recorded but never forwarded, and service order reads return
// the projected order once one has been written.
type recordingCommander struct {
	next       port.NetworkCommander
	projection bool

	mu        sync.Mutex
	actions   []types.Action
	projected []types.NetworkService
}

var _ port.NetworkCommander = (*recordingCommander)(nil)

func newRecordingCommander(next port.NetworkCommander, projection bool) *recordingCommander {
	return &recordingCommander{next: next, projection: projection}
}

func (r *recordingCommander) Actions() []types.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]types.Action(nil), r.actions...)
}

func (r *recordingCommander) record(a types.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, a)
}

func (r *recordingCommander) ListInterfaces(ctx context.Context) ([]types.RawInterface, error) {
	return r.next.ListInterfaces(ctx)
}

func (r *recordingCommander) SetInterfaceAddress(ctx context.Context, name, ip, netmask string) error {
	r.record(types.Action{Kind: "set_address", Target: name, Detail: ip + "/" + netmask})
	if r.projection {
		return nil
	}
	return r.next.SetInterfaceAddress(ctx, name, ip, netmask)
}

func (r *recordingCommander) DisableInterface(ctx context.Context, name string) error {
	r.record(types.Action{Kind: "disable_interface", Target: name})
	if r.projection {
		return nil
	}
	return r.next.DisableInterface(ctx, name)
}

func (r *recordingCommander) GetServiceOrder(ctx context.Context) ([]types.NetworkService, error) {
	r.mu.Lock()
	projected := r.projected
	r.mu.Unlock()
	if r.projection && projected != nil {
		return append([]types.NetworkService(nil), projected...), nil
	}

	services, err := r.next.GetServiceOrder(ctx)
	if err == nil && r.projection {
		r.mu.Lock()
		r.projected = append([]types.NetworkService(nil), services...)
		r.mu.Unlock()
	}
	return services, err
}

func (r *recordingCommander) SetServiceOrder(ctx context.Context, order types.ServiceOrder) error {
	r.record(types.Action{Kind: "set_service_order", Target: "services", Detail: fmt.Sprintf("%v", []string(order))})
	if !r.projection {
		return r.next.SetServiceOrder(ctx, order)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	byName := make(map[string]types.NetworkService, len(r.projected))
	for _, s := range r.projected {
		byName[s.Name] = s
	}
	next := make([]types.NetworkService, 0, len(order))
	for _, name := range order {
		s, ok := byName[name]
		if !ok {
			s = types.NetworkService{Name: name}
		}
		next = append(next, s)
	}
	r.projected = next
	return nil
}

func (r *recordingCommander) SetWifiPower(ctx context.Context, device string, on bool) error {
	r.record(types.Action{Kind: "set_wifi_power", Target: device, Detail: fmt.Sprintf("%t", on)})
	if r.projection {
		return nil
	}
	return r.next.SetWifiPower(ctx, device, on)
}
