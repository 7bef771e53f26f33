// Package sheet provides a Bubble Tea spreadsheet grid component backed by
// the grid package.
//
// The package is responsible for input handling (keys, mouse, bracketed
// paste), the editing lifecycle of cells, clipboard integration, and a
// default terminal renderer. Cell data is owned by the host: the component
// reads it through Config.Data / SetData and reports every change as a
// grid.Mutation.
//
// Mouse coordinates are relative to the component's top-left corner. Hosts
// that place the component elsewhere translate tea.MouseMsg before
// forwarding it, or send PointerDownMsg and friends directly.
package sheet
