// Package ui hosts a drawer container in a Bubble Tea terminal program.
//
// Core abstractions:
//   - View: content embedded in a panel (Elm-style Init/Update/View)
//   - Panel: a terminal region backing one drawer surface
//   - Dimmer: the dimming layer drawn over the central panel
//   - DrawerLayout: converts drawer distance units into terminal columns
//   - TickAnimator: runs drawer animations as tea.Tick frames
//   - DragTracker: turns mouse press/motion/release into gesture samples
//   - FocusManager: routes keys to the most prominent panel
//   - KeyHandler: leader-key (SPC) bindings for the imperative drawer API
//   - ConfirmModal: yes/no prompt drawn over the whole layout
//
// The demo content is a MenuView (left), PageView (central) and InfoView (right).
package ui
