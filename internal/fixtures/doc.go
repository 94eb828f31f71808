// Package fixtures provides shared interfaces and subjects for tests.
//
// The interface chain:
//   - TestInterface: abstract Method1, Method2, Method3
//   - TestSubInterface: TestInterface + abstract Method4
//   - TestSubInterfaceWithOverride: TestSubInterface shape, Method3 implemented
//   - FullyImplemented: TestInterface with every method implemented
//   - WithExtra: TestInterface + optional Extra
package fixtures
