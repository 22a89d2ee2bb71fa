package vocab

var defaultV1 = &table{
	version: "v1",
	synonyms: map[string]string{
		"js":      "javascript",
		"nodejs":  "node.js",
		"reactjs": "react",
		"python":  "python3",
		"ml":      "machine learning",
		"ai":      "artificial intelligence",
	},
	atsKeywords: []string{
		"experience", "skills", "education", "responsibilities", "achievements",
		"results", "managed", "developed", "implemented", "created", "improved",
		"increased", "decreased", "led", "coordinated", "collaborated",
	},
	actionVerbs: []string{
		"managed", "developed", "implemented", "created", "improved",
		"increased", "decreased", "led", "coordinated", "collaborated",
	},
	feedbackActionVerbs: []string{
		"managed", "developed", "implemented", "created", "improved",
		"increased", "led", "achieved", "delivered", "optimized",
	},
	stopWords: set(englishStopWords...),
	keywordStopWords: set(
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "from", "up", "about", "into", "through", "during",
		"before", "after", "above", "below", "over", "under", "again", "further",
		"then", "once", "here", "there", "when", "where", "why", "how", "all",
		"any", "both", "each", "few", "more", "most", "other", "some", "such",
		"no", "nor", "not", "only", "own", "same", "so", "than", "too", "very",
		"can", "will", "just", "should", "now",
	),
	categories: []Category{
		{Name: "programming", Keywords: []string{"python", "java", "javascript", "c++", "c#", "php", "ruby", "go"}},
		{Name: "frameworks", Keywords: []string{"react", "angular", "vue", "django", "flask", "spring", "express"}},
		{Name: "databases", Keywords: []string{"sql", "mysql", "postgresql", "mongodb", "redis", "oracle"}},
		{Name: "cloud", Keywords: []string{"aws", "azure", "gcp", "docker", "kubernetes"}},
		{Name: "soft_skills", Keywords: []string{"leadership", "communication", "teamwork", "management"}},
		{Name: "certifications", Keywords: []string{"certified", "certification", "pmp", "scrum"}},
	},
	resumeSkills: ResumeSkills{
		Technical: []string{
			"python", "javascript", "java", "c++", "c#", "react", "angular", "vue",
			"node.js", "express", "django", "flask", "spring", "html", "css",
			"sql", "mysql", "postgresql", "mongodb", "redis", "docker", "kubernetes",
			"aws", "azure", "gcp", "git", "jenkins", "tensorflow", "pytorch",
			"machine learning", "data science", "ai", "blockchain", "microservices",
		},
		Soft: []string{
			"leadership", "communication", "teamwork", "problem solving",
			"critical thinking", "creativity", "adaptability", "time management",
			"project management", "collaboration", "analytical", "detail-oriented",
		},
		Tools: []string{
			"excel", "powerpoint", "word", "photoshop", "illustrator",
			"figma", "sketch", "jira", "confluence", "slack", "trello",
			"tableau", "power bi", "salesforce", "hubspot",
		},
	},
	spokenLanguages: []string{
		"English", "Spanish", "French", "German", "Chinese", "Japanese", "Korean", "Portuguese",
		"Italian", "Russian", "Arabic", "Hindi", "Dutch", "Polish", "Turkish", "Ukrainian",
	},
	trendingSkills: []string{
		"artificial intelligence", "machine learning", "cloud computing",
		"cybersecurity", "data science", "blockchain", "devops",
		"react", "python", "kubernetes", "aws", "azure",
	},
	growthIndustries: []string{
		"technology", "healthcare", "renewable energy", "fintech",
		"e-commerce", "biotechnology", "robotics", "digital marketing",
	},
	salaryTrends: []SalaryTrend{
		{Role: "software_engineer", Average: 95000, Growth: 0.08},
		{Role: "data_scientist", Average: 110000, Growth: 0.12},
		{Role: "product_manager", Average: 115000, Growth: 0.06},
		{Role: "devops_engineer", Average: 105000, Growth: 0.15},
		{Role: "cybersecurity_analyst", Average: 98000, Growth: 0.18},
	},
	locations: map[string]LocationInsight{
		"san francisco": {JobGrowth: "high", CostOfLiving: "very high", TechJobs: "abundant"},
		"austin":        {JobGrowth: "very high", CostOfLiving: "moderate", TechJobs: "growing"},
		"new york":      {JobGrowth: "moderate", CostOfLiving: "very high", TechJobs: "abundant"},
		"remote":        {JobGrowth: "high", CostOfLiving: "variable", TechJobs: "increasing"},
	},
	industrySkills: map[string][]string{
		"technology": {"python", "javascript", "react", "aws", "machine learning"},
		"healthcare": {"healthcare", "medical", "patient care", "clinical"},
		"finance":    {"financial analysis", "risk management", "trading", "fintech"},
		"education":  {"teaching", "curriculum", "e-learning", "educational technology"},
	},
}

// englishStopWords is the common English stop list used before TF-IDF.
var englishStopWords = []string{
	"a", "about", "above", "across", "after", "afterwards", "again", "against",
	"all", "almost", "alone", "along", "already", "also", "although", "always",
	"am", "among", "amongst", "amoungst", "amount", "an", "and", "another",
	"any", "anyhow", "anyone", "anything", "anyway", "anywhere", "are",
	"around", "as", "at", "back", "be", "became", "because", "become",
	"becomes", "becoming", "been", "before", "beforehand", "behind", "being",
	"below", "beside", "besides", "between", "beyond", "bill", "both",
	"bottom", "but", "by", "call", "can", "cannot", "cant", "co", "con",
	"could", "couldnt", "cry", "de", "describe", "detail", "do", "done",
	"down", "due", "during", "each", "eg", "eight", "either", "eleven", "else",
	"elsewhere", "empty", "enough", "etc", "even", "ever", "every", "everyone",
	"everything", "everywhere", "except", "few", "fifteen", "fifty", "fill",
	"find", "fire", "first", "five", "for", "former", "formerly", "forty",
	"found", "four", "from", "front", "full", "further", "get", "give", "go",
	"had", "has", "hasnt", "have", "he", "hence", "her", "here", "hereafter",
	"hereby", "herein", "hereupon", "hers", "herself", "him", "himself", "his",
	"how", "however", "hundred", "i", "ie", "if", "in", "inc", "indeed",
	"interest", "into", "is", "it", "its", "itself", "keep", "last", "latter",
	"latterly", "least", "less", "ltd", "made", "many", "may", "me",
	"meanwhile", "might", "mill", "mine", "more", "moreover", "most", "mostly",
	"move", "much", "must", "my", "myself", "name", "namely", "neither",
	"never", "nevertheless", "next", "nine", "no", "nobody", "none", "noone",
	"nor", "not", "nothing", "now", "nowhere", "of", "off", "often", "on",
	"once", "one", "only", "onto", "or", "other", "others", "otherwise", "our",
	"ours", "ourselves", "out", "over", "own", "part", "per", "perhaps",
	"please", "put", "rather", "re", "same", "see", "seem", "seemed",
	"seeming", "seems", "serious", "several", "she", "should", "show", "side",
	"since", "sincere", "six", "sixty", "so", "some", "somehow", "someone",
	"something", "sometime", "sometimes", "somewhere", "still", "such",
	"system", "take", "ten", "than", "that", "the", "their", "them",
	"themselves", "then", "thence", "there", "thereafter", "thereby",
	"therefore", "therein", "thereupon", "these", "they", "thick", "thin",
	"third", "this", "those", "though", "three", "through", "throughout",
	"thru", "thus", "to", "together", "too", "top", "toward", "towards",
	"twelve", "twenty", "two", "un", "under", "until", "up", "upon", "us",
	"very", "via", "was", "we", "well", "were", "what", "whatever", "when",
	"whence", "whenever", "where", "whereafter", "whereas", "whereby",
	"wherein", "whereupon", "wherever", "whether", "which", "while", "whither",
	"who", "whoever", "whole", "whom", "whose", "why", "will", "with",
	"within", "without", "would", "yet", "you", "your", "yours", "yourself",
	"yourselves",
}
