// Package drawer implements the panel interaction state machine of a side-panel
// navigation container.
//
// Core pieces:
//   - Machine: pure state transitions (Closed, Sliding, Open) returning Effects
//   - Overlay: dimming layer, a function of State
//   - Container: owns the three panel surfaces, routes gesture samples into the
//     Machine and executes Effects through an Animator
//   - Wiring: three-entry lookup table of content providers applied at construction
//
// A Container is driven from a single UI thread and is not safe for concurrent use.
package drawer
