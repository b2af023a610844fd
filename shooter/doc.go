// Package shooter is the per-frame simulation of the car shooter.
//
// Cars cross the screen left to right, the player fires a small pool of
// marbles straight up, and a marble that hits a car removes both, scores a
// point and returns to the pool. Everything the simulation cannot do itself
// (entity storage, input, collision detection, audio, text) is reached through
// the Host interface; the simulation's own state lives in a single State value
// that Update mutates once per frame.
package shooter
