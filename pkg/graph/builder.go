package graph

// Builder accumulates the relations discovered by upstream extractors and
// assembles the three graph models. Nodes are deduplicated per graph by
// label; repeated relations append parallel edges, preserving aggregated
// call counts.
type Builder struct {
	calls   *Model[CallNode]
	deps    *Model[ModuleNode]
	classes *Model[ClassNode]

	callIDs   map[string]NodeID
	moduleIDs map[string]NodeID
	classIDs  map[string]NodeID
}

// NewBuilder returns a Builder with three empty graphs.
func NewBuilder() *Builder {
	return &Builder{
		calls:     New[CallNode](),
		deps:      New[ModuleNode](),
		classes:   New[ClassNode](),
		callIDs:   make(map[string]NodeID),
		moduleIDs: make(map[string]NodeID),
		classIDs:  make(map[string]NodeID),
	}
}

// AddFunction registers a call-graph node with source location detail.
// Functions referenced only through AddCall get a bare node automatically.
func (b *Builder) AddFunction(name, file string, line int) NodeID {
	if id, ok := b.callIDs[name]; ok {
		node := b.calls.Node(id)
		if node.File == "" && file != "" {
			b.calls.nodes[id] = CallNode{Name: name, File: file, Line: line}
		}
		return id
	}
	id := b.calls.AddNode(CallNode{Name: name, File: file, Line: line})
	b.callIDs[name] = id
	return id
}

// AddModule registers a dependency-graph node with its path and external
// flag.
func (b *Builder) AddModule(name, path string, external bool) NodeID {
	if id, ok := b.moduleIDs[name]; ok {
		node := b.deps.Node(id)
		if node.Path == "" && path != "" {
			b.deps.nodes[id] = ModuleNode{Name: name, Path: path, External: external}
		}
		return id
	}
	id := b.deps.AddNode(ModuleNode{Name: name, Path: path, External: external})
	b.moduleIDs[name] = id
	return id
}

// AddClass registers an inheritance-graph node with its hierarchy depth.
func (b *Builder) AddClass(name, file string, depth int) NodeID {
	if id, ok := b.classIDs[name]; ok {
		node := b.classes.Node(id)
		if node.File == "" && file != "" {
			b.classes.nodes[id] = ClassNode{Name: name, File: file, Depth: depth}
		}
		return id
	}
	id := b.classes.AddNode(ClassNode{Name: name, File: file, Depth: depth})
	b.classIDs[name] = id
	return id
}

// AddCall records caller invoking callee callCount times, inserting or
// reusing the nodes.
func (b *Builder) AddCall(caller, callee string, callCount int) {
	from := b.AddFunction(caller, "", 0)
	to := b.AddFunction(callee, "", 0)
	b.calls.AddEdge(from, to, float64(callCount), EdgeCall)
}

// AddDependency records importer depending on imported, with the relation
// kind reported by the extractor ("import", "use", ...).
func (b *Builder) AddDependency(importer, imported, relationKind string) {
	from := b.AddModule(importer, "", false)
	to := b.AddModule(imported, "", false)
	b.deps.AddEdge(from, to, 1, EdgeKind(relationKind))
}

// AddInheritance records child inheriting from parent.
func (b *Builder) AddInheritance(child, parent string) {
	from := b.AddClass(child, "", 0)
	to := b.AddClass(parent, "", 0)
	b.classes.AddEdge(from, to, 1, EdgeInherit)
}

// CallGraph exposes the call graph under construction.
func (b *Builder) CallGraph() *Model[CallNode] { return b.calls }

// DependencyGraph exposes the dependency graph under construction.
func (b *Builder) DependencyGraph() *Model[ModuleNode] { return b.deps }

// InheritanceGraph exposes the inheritance graph under construction.
func (b *Builder) InheritanceGraph() *Model[ClassNode] { return b.classes }

// Build hands the three graphs to a new Analyzer. The builder should not be
// reused afterwards; the analyzer treats the graphs as frozen.
func (b *Builder) Build(opts ...Option) *Analyzer {
	return NewAnalyzer(b.calls, b.deps, b.classes, opts...)
}
