// Package manifest reads a declarative description of a component graph
// from YAML and turns it into a component.Storage ready for resolution.
//
// A manifest names its components, what each binds, and what each installs:
//
//	toplevel: app
//	types:
//	  Server: {size: 64, align: 8}
//	components:
//	  - name: app
//	    exposes: [Server]
//	    installs: [http, storage]
//	  - name: http
//	    installs: [storage]
//	    bindings:
//	      - type: Server
//	        deps: [Handler, Config]
//	      - type: Handler
//	        deps: [Store]
//	    multibindings:
//	      - type: Middleware
//	        deps: [Config]
//	  - name: storage
//	    bindings:
//	      - type: Config
//	        instance: true
//	      - type: Store
//	        deps: [SQLStore]
//	        external: true
//	      - type: SQLStore
//	        deps: [Config]
//	    compressions:
//	      - class: SQLStore
//	        interface: Store
//	        deps: [Config]
//
// The top-level component is applied directly; every other component becomes
// a lazy component, identified by (document, name), so a component
// installed from several places is expanded once.
//
// Factories are placeholders: a recipe from a manifest is identified by its
// dependency list and allocation flag only. Instances ("instance: true") of
// the same type are the same object across the document. Types listed under
// "types" carry their size and alignment into the allocator plan; other
// types are zero-sized.
//
// "exposes" is honoured on the top-level component only.
package manifest
