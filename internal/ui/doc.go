// Package ui contains the Bubble Tea program behind the picker popup.
// The Model type focuses on message orchestration while components under
// internal/ui own their own state and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses are offered to the components in focus order. The help
//     overlay comes first and, while shown, consumes every key. While the
//     list's filter is being edited the list goes first so typed characters
//     reach the filter.
//   - After every update the commands of all components are collected with
//     forceAll set and handed to the help overlay. The command bar collects
//     again without forceAll, so a shown overlay hides everything else.
//
// Backend interactions:
//   - A backend.Watcher delivers item lines. Update waits for those events
//     and hands them to the dispatcher, which parses them into the item store
//     before the list is refreshed.
//
// Rendering:
//   - View paints the list and command bar into a render.Canvas and lets the
//     overlay draw on top. Draw failures are logged and the popup is left out
//     of that frame.
package ui
