package version

import (
	"bytes"
	"log"
	"slices"
	"strings"
	"testing"

	"github.com/go-mclib/anvilgui/pkg/server"
	jp "github.com/go-mclib/protocol/java_protocol"
)

type recorder struct {
	pkts []jp.Packet
}

func (r *recorder) WritePacket(pkt jp.Packet) error {
	r.pkts = append(r.pkts, pkt)
	return nil
}

func TestOf(t *testing.T) {
	tests := []struct {
		release  string
		ok       bool
		protocol int32
	}{
		{"1.20.2", true, 764},
		{"1.21.6", true, 771},
		{"1.21.7", true, 772},
		{"1.21.8", true, 772},
		{"1.21.9", true, 773},
		{"1.21.10", true, 773},
		{"1.21.11", true, 774},
		{"1.8.8", false, 0},
		{"", false, 0},
	}

	for _, tt := range tests {
		a, ok := Of(tt.release)
		if ok != tt.ok {
			t.Errorf("Of(%q) ok = %v, want %v", tt.release, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if a.Name() != tt.release {
			t.Errorf("Of(%q).Name() = %q", tt.release, a.Name())
		}
		if a.Protocol() != tt.protocol {
			t.Errorf("Of(%q).Protocol() = %d, want %d", tt.release, a.Protocol(), tt.protocol)
		}
	}
}

func TestResolveWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	if a := Resolve("1.21.11", logger); a.Name() != "1.21.11" {
		t.Errorf("Resolve(1.21.11).Name() = %q", a.Name())
	}
	for _, v := range []string{"1.21.6", "1.21.7", "1.21.9"} {
		if a := Resolve(v, logger); a.Name() != v {
			t.Errorf("Resolve(%s).Name() = %q", v, a.Name())
		}
	}
	if buf.Len() != 0 {
		t.Errorf("known release logged %q", buf.String())
	}

	a := Resolve("1.99", logger)
	if a.Name() != "fallback" {
		t.Errorf("Resolve(1.99).Name() = %q, want fallback", a.Name())
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 || !strings.Contains(lines[0], `"1.99"`) {
		t.Errorf("warning = %q, want one line naming 1.99", buf.String())
	}

	if a := Resolve("1.99", nil); a.Name() != "fallback" {
		t.Errorf("Resolve with nil logger = %q, want fallback", a.Name())
	}
}

func TestVersions(t *testing.T) {
	got := Versions()
	want := []string{"1.20.2", "1.21.10", "1.21.11", "1.21.6", "1.21.7", "1.21.8", "1.21.9"}
	if !slices.Equal(got, want) {
		t.Errorf("Versions() = %v, want %v", got, want)
	}
}

func TestAnvilMenuByRelease(t *testing.T) {
	tests := []struct {
		adapter Adapter
		menu    server.MenuType
	}{
		{v1_20_2{}, server.MenuAnvilLegacy},
		{v1_21_8{}, server.MenuAnvil},
		{v1_21_10{}, server.MenuAnvil},
		{v1_21_11{}, server.MenuAnvil},
		{adapters["1.21.6"], server.MenuAnvil},
		{adapters["1.21.9"], server.MenuAnvil},
		{fallback{}, server.MenuAnvil},
	}

	srv := server.New("test", log.New(&bytes.Buffer{}, "", 0))
	p := srv.Join("Bob", &recorder{})
	for _, tt := range tests {
		c := tt.adapter.NewContainerAnvil(p, "t")
		if c.Menu() != tt.menu {
			t.Errorf("%s: anvil menu = %d, want %d", tt.adapter.Name(), c.Menu(), tt.menu)
		}
		if !c.IsAnvil() || c.Inventory().Size() != server.AnvilSlots {
			t.Errorf("%s: container is not a %d-slot anvil", tt.adapter.Name(), server.AnvilSlots)
		}
	}
}

func TestNextContainerIDWraps(t *testing.T) {
	srv := server.New("test", log.New(&bytes.Buffer{}, "", 0))
	p := srv.Join("Bob", &recorder{})
	a := v1_21_11{}

	for want := int32(1); want <= 100; want++ {
		if got := a.NextContainerID(p); got != want {
			t.Fatalf("NextContainerID() = %d, want %d", got, want)
		}
	}
	if got := a.NextContainerID(p); got != 1 {
		t.Errorf("NextContainerID() after 100 = %d, want 1", got)
	}
}

func TestSlotListenerTracksChanges(t *testing.T) {
	tests := []struct {
		adapter   Adapter
		listeners int
	}{
		{v1_20_2{}, 1},
		{v1_21_11{}, 1},
		{fallback{}, 0},
	}

	for _, tt := range tests {
		srv := server.New("test", log.New(&bytes.Buffer{}, "", 0))
		conn := &recorder{}
		p := srv.Join("Bob", conn)

		c := tt.adapter.NewContainerAnvil(p, "t")
		tt.adapter.SetActiveContainer(p, c)
		tt.adapter.SetActiveContainerID(c, tt.adapter.NextContainerID(p))
		if err := tt.adapter.AddActiveContainerSlotListener(c, p); err != nil {
			t.Fatalf("%s: AddActiveContainerSlotListener() error = %v", tt.adapter.Name(), err)
		}
		if c.SlotListeners() != tt.listeners {
			t.Errorf("%s: slot listeners = %d, want %d", tt.adapter.Name(), c.SlotListeners(), tt.listeners)
		}

		before := len(conn.pkts)
		c.Inventory().SetItem(0, server.NewItemStack(server.MaterialPaper, 1))
		sent := len(conn.pkts) - before
		// left input plus the recomputed output
		want := 2 * tt.listeners
		if sent != want {
			t.Errorf("%s: packets after slot change = %d, want %d", tt.adapter.Name(), sent, want)
		}
	}
}

func TestHandleInventoryCloseEventFiresOnce(t *testing.T) {
	srv := server.New("test", log.New(&bytes.Buffer{}, "", 0))
	p := srv.Join("Bob", &recorder{})
	l := &countingListener{}
	srv.Events.Register(l)

	a := v1_21_11{}
	a.HandleInventoryCloseEvent(p)
	if l.closes != 0 {
		t.Fatalf("close events with no custom window = %d, want 0", l.closes)
	}

	c := a.NewContainerAnvil(p, "t")
	a.SetActiveContainer(p, c)
	a.HandleInventoryCloseEvent(p)
	a.HandleInventoryCloseEvent(p)
	if l.closes != 1 {
		t.Errorf("close events = %d, want 1", l.closes)
	}

	a.SetActiveContainerDefault(p)
	if p.HasCustomContainer() {
		t.Error("SetActiveContainerDefault left a custom container bound")
	}
}

type countingListener struct {
	clicks, closes int
}

func (l *countingListener) OnInventoryClick(*server.ClickEvent) { l.clicks++ }
func (l *countingListener) OnInventoryClose(*server.CloseEvent) { l.closes++ }
