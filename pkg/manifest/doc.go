// Package manifest reads a project's declared and locked JavaScript
// dependencies.
//
// Two documents feed a run: package.json (dependencies and devDependencies,
// required) and package-lock.json (optional). The lockfile's availability
// selects the whole-run resolution [Mode]; individual packages never mix
// strategies.
package manifest
