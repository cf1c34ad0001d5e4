// Package ui is the Bubble Tea front end of photoboard.
//
// Core pieces:
//   - AppModel: root model owning the board state; requests run as tea.Cmds
//     and come back as messages handled on the single update loop
//   - View: a screen region or modal with its own model, update, view (Elm-style)
//   - BoardListView / ImageListView: the two panels, rotated with FocusManager
//   - OverlayStack: modal dialogs (create board, confirm, image tags)
//   - Loader / Toasts: request progress and notifications
//   - KeybindRegistry / KeyHandler: SPC-leader key sequences
package ui
