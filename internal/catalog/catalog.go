// Package catalog holds the compile-time curriculum: the fixed set of skill
// tracks and their ordered topics. There is no mutation path; everything a
// learner changes lives in the progress record, keyed by the ids defined here.
package catalog

// Topic is a single learning item within a track. Topic ids are unique
// across all tracks.
type Topic struct {
	ID          string
	Name        string
	Description string
}

// Track is a named curriculum: an ordered list of topics plus display
// metadata for the sidebar.
type Track struct {
	ID     string
	Name   string
	Icon   string
	Topics []Topic
}

var tracks = []Track{
	{
		ID:   "python",
		Name: "Python",
		Icon: "🐍",
		Topics: []Topic{
			{ID: "py1", Name: "Variables & Data Types", Description: "Understanding strings, integers, lists, and dictionaries."},
			{ID: "py2", Name: "Control Flow", Description: "If-else statements, for loops, and while loops."},
			{ID: "py3", Name: "Functions", Description: "Defining and calling functions, arguments, and return values."},
			{ID: "py4", Name: "OOP Basics", Description: "Classes, objects, and basic inheritance."},
			{ID: "py5", Name: "File Handling", Description: "Reading from and writing to files."},
			{ID: "py6", Name: "Modules & Pip", Description: "Importing libraries and managing packages."},
		},
	},
	{
		ID:   "javascript",
		Name: "JavaScript",
		Icon: "📜",
		Topics: []Topic{
			{ID: "js1", Name: "ES6 Basics", Description: "Let/Const, Arrow functions, and Template literals."},
			{ID: "js2", Name: "DOM Manipulation", Description: "Selecting and modifying HTML elements."},
			{ID: "js3", Name: "Async/Await", Description: "Handling asynchronous operations and Promises."},
			{ID: "js4", Name: "React Fundamentals", Description: "Components, Props, and State."},
			{ID: "js5", Name: "Web APIs", Description: "Using Fetch API to connect to servers."},
		},
	},
	{
		ID:   "java",
		Name: "Java",
		Icon: "☕",
		Topics: []Topic{
			{ID: "java1", Name: "Java Basics", Description: "Syntax, variables, and data types."},
			{ID: "java2", Name: "Collections", Description: "ArrayLists, HashMaps, and Sets."},
			{ID: "java3", Name: "Interfaces", Description: "Defining contracts for classes."},
			{ID: "java4", Name: "Streams API", Description: "Modern functional programming in Java."},
		},
	},
	{
		ID:   "sql",
		Name: "SQL",
		Icon: "🗄️",
		Topics: []Topic{
			{ID: "sql1", Name: "SELECT Basics", Description: "Querying data from a single table."},
			{ID: "sql2", Name: "Joins", Description: "Combining data from multiple tables."},
			{ID: "sql3", Name: "Aggregations", Description: "GROUP BY, COUNT, SUM, and AVG."},
			{ID: "sql4", Name: "Subqueries", Description: "Using queries inside other queries."},
		},
	},
	{
		ID:   "data-analytics",
		Name: "Data Analytics",
		Icon: "📊",
		Topics: []Topic{
			{ID: "da1", Name: "Excel Basics", Description: "Pivot tables and VLOOKUP."},
			{ID: "da2", Name: "Pandas", Description: "Data manipulation in Python."},
			{ID: "da3", Name: "Matplotlib/Seaborn", Description: "Data visualization techniques."},
			{ID: "da4", Name: "Statistics", Description: "Probability and descriptive statistics."},
		},
	},
}

// Tracks returns all tracks in sidebar display order.
func Tracks() []Track {
	return tracks
}

// Find returns the track with the given id. A stale id (e.g. a track removed
// between releases but still referenced by persisted progress) returns
// ok=false rather than an error.
func Find(id string) (Track, bool) {
	for _, t := range tracks {
		if t.ID == id {
			return t, true
		}
	}
	return Track{}, false
}

// TopicSet returns the set of topic ids belonging to the track.
func (t Track) TopicSet() map[string]bool {
	set := make(map[string]bool, len(t.Topics))
	for _, topic := range t.Topics {
		set[topic.ID] = true
	}
	return set
}
