// Package envelope provides a four-state onset envelope follower.
//
// A [Follower] waits for a sample above its onset threshold, ramps its
// amplitude up by the attack rate per sample until it reaches 1, then ramps
// down by the decay rate until it reaches 0 and waits again. The amplitude is
// a float32 in [0, 1] and is meant to cross-fade a wet signal against the dry
// input.
//
// [StateFinal] is a reserved hold state: no transition enters it, but a
// caller may place the follower there with [Follower.SetState], after which a
// sample at or below the reset threshold returns it to [StateWaiting].
package envelope
