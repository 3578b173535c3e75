package workload

import (
	"testing"
)

func TestPartitionedRNG_SameSubsystem_ReturnsCachedInstance(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	if rng.ForSubsystem(SubsystemBurst) != rng.ForSubsystem(SubsystemBurst) {
		t.Error("ForSubsystem returned different instances for the same name")
	}
	if rng.Key() != 42 {
		t.Errorf("Key: got %d, want 42", rng.Key())
	}
}

func TestPartitionedRNG_SubsystemsAreIsolated(t *testing.T) {
	// GIVEN two RNGs with the same key
	a := NewPartitionedRNG(NewSimulationKey(7))
	b := NewPartitionedRNG(NewSimulationKey(7))

	// WHEN one draws from an extra subsystem first
	_ = b.ForSubsystem(SubsystemPriority).Int63()

	// THEN the burst stream is unaffected
	for i := 0; i < 10; i++ {
		x, y := a.ForSubsystem(SubsystemBurst).Int63(), b.ForSubsystem(SubsystemBurst).Int63()
		if x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestPartitionedRNG_DifferentSubsystems_DifferentStreams(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(7))
	if rng.ForSubsystem(SubsystemArrival).Int63() == rng.ForSubsystem(SubsystemBurst).Int63() {
		t.Error("arrival and burst subsystems produced the same first value")
	}
}
