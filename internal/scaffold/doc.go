// Package scaffold renders the files yantr writes itself rather than
// fetching from the registry: a new project's package.json, tsconfig.json
// and entry point, and the route files produced by "yantr generate route".
//
// Template sets live under scaffolds/ and are embedded into the binary.
// Files ending in .tmpl are rendered with text/template and written without
// the suffix; "__name__" in a file name is replaced with Data.Name.
package scaffold
