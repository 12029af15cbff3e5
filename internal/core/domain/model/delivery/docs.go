// Package delivery models a rider's view of a delivery: the backend status
// vocabulary, the display steps derived from it, the actions a rider can
// invoke, and the table that ties steps to labels and legal actions.
//
// The package includes:
//   - Status: the backend-authoritative lifecycle value (closed enumeration)
//   - Step: the display grouping, obtained only through Project
//   - ActionKind: the four irreversible rider actions
//   - StepConfig: the label and ordered legal actions of each step
//   - Transition: the expected step and client effect after a successful action
//   - Tab: a static group of statuses forming one worklist
//   - Delivery and Coordinates: read replicas of backend records
//   - ActionResult: the uniform outcome of invoking an action
//
// Key rules:
//   - Project is total: unknown or empty statuses map to StepWaiting
//   - The step configuration table is the only place that decides which
//     actions are legal; callers never compare statuses directly
//   - Delivered and Cancelled are terminal; Cancelled is set by other actors
//     and has no rider action leading to it
package delivery
