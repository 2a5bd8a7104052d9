package lexicon

// Category bucket names for known technical terms.
const (
	CategoryProgramming  = "Programming Languages"
	CategoryMachLearning = "Machine Learning & AI"
	CategoryCompChem     = "Computational Chemistry"
	CategorySoftware     = "Software & Tools"
	CategoryDatabases    = "Databases"
	CategoryWeb          = "Web Technologies"
	CategoryDataScience  = "Data Science"
	CategoryCloud        = "Cloud & DevOps"
	CategoryScientific   = "Scientific Computing"
)

// knownTechnicalTerms maps lowercase technical terms to category buckets.
// Acronyms and lowercase single words found during the secondary document
// scan are accepted as skills only when they appear here.
func knownTechnicalTerms() map[string]string {
	byCategory := map[string][]string{
		CategoryProgramming: {
			"python", "java", "javascript", "typescript", "c++", "c#", "c",
			"r", "matlab", "scala", "go", "rust", "swift", "kotlin", "php",
			"ruby", "perl", "bash", "shell", "powershell", "sql", "html",
			"css", "fortran", "julia",
		},
		CategoryMachLearning: {
			"tensorflow", "pytorch", "keras", "scikit-learn", "sklearn",
			"xgboost", "lightgbm", "neural networks", "deep learning",
			"machine learning", "cnn", "rnn", "lstm", "transformer", "bert",
			"gpt", "nlp", "computer vision", "opencv",
		},
		CategoryCompChem: {
			"dft", "tddft", "gaussian", "orca", "vasp", "gromacs", "amber",
			"charmm", "namd", "lammps", "cp2k", "quantum espresso", "molpro",
			"turbomole", "psi4", "qchem", "gamess", "nwchem", "cpmd",
			"ab initio", "molecular dynamics", "monte carlo", "hartree-fock",
			"mp2", "ccsd", "ccsd(t)", "caspt2", "qm/mm", "pcm", "cosmo",
			"smd", "def2", "sto-3g", "6-31g", "lanl2dz",
		},
		CategorySoftware: {
			"linux", "unix", "windows", "macos", "docker", "kubernetes",
			"git", "svn", "jira", "confluence", "vim", "emacs", "vscode",
			"pycharm", "intellij", "latex",
		},
		CategoryDatabases: {
			"mongodb", "postgresql", "mysql", "sqlite", "oracle", "redis",
			"elasticsearch", "cassandra", "dynamodb", "neo4j",
		},
		CategoryWeb: {
			"react", "angular", "vue", "node.js", "django", "flask",
			"spring", "express", "fastapi", "rails", "next.js", "webpack",
		},
		CategoryDataScience: {
			"pandas", "numpy", "scipy", "matplotlib", "seaborn", "plotly",
			"jupyter", "tableau", "power bi", "sas", "spss", "stata",
			"excel", "spark", "hadoop",
		},
		CategoryCloud: {
			"aws", "azure", "gcp", "jenkins", "terraform", "ansible",
			"prometheus", "grafana", "github actions", "gitlab ci",
		},
		CategoryScientific: {
			"mathematica", "maple", "origin", "labview", "comsol", "ansys",
			"abaqus", "fluent", "igor pro",
		},
	}

	terms := make(map[string]string)
	for cat, list := range byCategory {
		for _, term := range list {
			terms[term] = cat
		}
	}
	return terms
}

// canonicalSkillNames maps common skill-name variants to canonical spellings.
func canonicalSkillNames() map[string]string {
	return map[string]string{
		"golang":     "Go",
		"go lang":    "Go",
		"javascript": "JavaScript",
		"js":         "JavaScript",
		"typescript": "TypeScript",
		"ts":         "TypeScript",
		"k8s":        "Kubernetes",
		"kubernetes": "Kubernetes",
		"react.js":   "React",
		"reactjs":    "React",
		"vue.js":     "Vue",
		"vuejs":      "Vue",
		"node.js":    "Node.js",
		"nodejs":     "Node.js",
		"postgres":   "PostgreSQL",
		"postgresql": "PostgreSQL",
		"sklearn":    "scikit-learn",
		"py":         "Python",
		"python":     "Python",
		"c++":        "C++",
		"sql":        "SQL",
		"html":       "HTML",
		"css":        "CSS",
		"aws":        "AWS",
		"gcp":        "GCP",
		"dft":        "DFT",
		"tddft":      "TD-DFT",
		"latex":      "LaTeX",
		"matlab":     "MATLAB",
	}
}
