// Package widgets contains the status and control widgets.
//
// Allowed here:
// - request-driven status widgets (RadioStatus, StaticStatus) and their Receive handlers
// - controllable widgets built on Visibility (ControllableButton, LoadingDisplay)
// - stateless drawing helpers (Box, List, VStack, HStack) and the shared palette
//
// Not allowed here:
// - request queueing or routing (core) or tab composition (tabs)
package widgets
