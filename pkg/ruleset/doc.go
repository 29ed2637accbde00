// Package ruleset manages named rules loaded from files.
//
// Rules are stored by the caller as JSON or YAML documents; this package
// loads them into executable trees, keeps them in a thread-safe registry,
// and optionally hot-reloads them when the files change. Storage remains a
// caller responsibility: the package only reads what the caller maintains
// on disk.
//
// A rule file carries a name and a rule document:
//
//	name: adult-active-user
//	description: user is active and of age
//	rule:
//	  operator: and
//	  args:
//	    - operator: eq
//	      args: [user.status, active]
//	    - operator: gt
//	      args: [user.age, 18]
//
// A bare JSON rule document (an object with an "operator" key) is also
// accepted; its name derives from the file name.
//
// The Manager ties loading, the registry, fsnotify-based file watching and
// an optional cron rescan schedule together:
//
//	mgr, err := ruleset.NewManager(&ruleset.ManagerConfig{Path: "rules/"}, logger)
//	err = mgr.Start(ctx)
//	r, ok := mgr.Get("adult-active-user")
package ruleset
