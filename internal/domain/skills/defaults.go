package skills

// DefaultPairs returns the built-in synonym pairs in match order. Some
// variants (react.js) are kept verbatim even though normalized input can
// never equal them exactly; they still take part in substring matching.
func DefaultPairs() []Pair {
	return []Pair{
		// SQL
		{"sql server", "sql"},
		{"mssql", "sql"},
		{"mysql", "sql"},
		{"postgresql", "sql"},
		{"postgres", "sql"},
		{"oracle sql", "sql"},
		{"sqlite", "sql"},
		{"tsql", "sql"},
		{"plsql", "sql"},

		// data science
		{"data science", "data science"},
		{"data scientist", "data science"},
		{"data analytics", "data science"},
		{"data analysis", "data science"},

		{"js", "javascript"},
		{"ecmascript", "javascript"},

		{"nodejs", "node.js"},
		{"node", "node.js"},
		{"node js", "node.js"},

		{"reactjs", "react"},
		{"react.js", "react"},
		{"react js", "react"},

		{"py", "python"},
		{"python3", "python"},
		{"python 3", "python"},

		{"java", "java"},
		{"java se", "java"},

		{"docker", "docker"},

		{"k8s", "kubernetes"},

		{"amazon web services", "aws"},
		{"amazon aws", "aws"},

		{"git", "git"},
		{"github", "git"},
		{"gitlab", "git"},

		{"rest", "rest api"},
		{"restful", "rest api"},
		{"rest api", "rest api"},
		{"restful api", "rest api"},
		{"api", "rest api"},

		{"html5", "html"},
		{"css3", "css"},

		{"mongo", "mongodb"},
		{"mongo db", "mongodb"},
	}
}

// DefaultTable builds a table from DefaultPairs.
func DefaultTable() *Table {
	return MustNewTable(DefaultPairs())
}
