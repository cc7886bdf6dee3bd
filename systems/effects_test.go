package systems

import (
	"testing"

	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/yohamta/donburi"
)

func TestSlotEffect(t *testing.T) {
	tw := newTestWorld(t)
	StartSlotEffect(tw.w, "grow")

	entry, ok := components.SlotEffect.First(tw.w)
	if !ok {
		t.Fatal("no slot effect")
	}
	fx := components.SlotEffect.Get(entry)

	peak := 1.0
	ticks := int(cfg.HUD.SpinDuration/tick) + 2
	for i := 0; i < ticks; i++ {
		tw.idle(nil, 1)
		if fx.Scale > peak {
			peak = fx.Scale
		}
	}
	if !approx(peak, cfg.HUD.PulseScale, 0.05) {
		t.Errorf("pulse peaked at %v, want about %v", peak, cfg.HUD.PulseScale)
	}
	if !fx.Done || fx.Scale != 1 || fx.Angle != 0 {
		t.Errorf("effect after running out = %+v", *fx)
	}
}

func TestSlotEffectReplaces(t *testing.T) {
	tw := newTestWorld(t)
	StartSlotEffect(tw.w, "grow")
	tw.idle(nil, 5)
	StartSlotEffect(tw.w, "overflow")

	n := 0
	components.SlotEffect.Each(tw.w, func(*donburi.Entry) { n++ })
	if n != 1 {
		t.Fatalf("slot effects = %d, want 1", n)
	}
	entry, _ := components.SlotEffect.First(tw.w)
	if fx := components.SlotEffect.Get(entry); fx.Item != "overflow" || fx.Done {
		t.Errorf("effect = %+v", *fx)
	}
}

func TestSlotEffectRunsWhileFrozen(t *testing.T) {
	tw := newTestWorld(t)
	SetTimeScale(tw.w, 0)
	StartSlotEffect(tw.w, "grow")
	tw.idle(nil, int(cfg.HUD.SpinDuration/tick)+2)

	entry, _ := components.SlotEffect.First(tw.w)
	if !components.SlotEffect.Get(entry).Done {
		t.Error("slot effect stalled with time frozen")
	}
}
