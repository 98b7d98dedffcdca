// Package fileutil provides the directory traversal used by recursive searches.
//
// # Walking
//
// Walk returns a lazy sequence of entries for every regular file below a root
// directory. Traversal is depth-first and pre-order; at each level entries are
// visited in lexicographic order by name, so two walks over the same tree
// produce the same sequence.
//
//	for entry := range fileutil.Walk(ctx, "src", fileutil.WalkOptions{}) {
//	    switch entry.Kind {
//	    case fileutil.EntryFile:
//	        fmt.Println(entry.Path)
//	    case fileutil.EntryError:
//	        log.Printf("skipping %s: %v", entry.Path, entry.Err)
//	    }
//	}
//
// Symbolic links are followed. A directory link whose target is already on the
// current descent path is reported as EntrySkippedLoop and not entered, which
// guarantees termination. The set of canonical ancestor paths is passed down
// the recursion explicitly rather than kept in package state.
//
// Errors (unreadable directories, dangling links) are reported as EntryError
// entries and the walk continues with the remaining entries. Breaking out of
// the range loop or cancelling the context stops the walk.
//
// # Filtering
//
//   - ExcludeDirs prunes directories by base name (e.g. ".git", "node_modules").
//   - Gitignore enables .gitignore files found at each level of the walk,
//     compiled with github.com/sabhiram/go-gitignore.
//
// Only directories and regular files are considered; sockets, devices and
// named pipes are ignored.
//
// # Binary detection
//
// IsBinaryFile samples the first 8000 bytes of a file and applies the NUL-byte
// heuristic from github.com/go-enry/go-enry.
package fileutil
