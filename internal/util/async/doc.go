// Package async provides utilities for parallel task execution with
// error collection.
//
// [RunParallel] executes named operations concurrently, optionally bounded,
// and joins every error. The operator uses it for NetBox calls that do not
// depend on each other, such as gathering prefix statistics and mapping
// existing prefixes at startup.
package async
