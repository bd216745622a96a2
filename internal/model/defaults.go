package model

// sample is the first-run profile shown before the user has saved anything.
var sample = Document{
	Personal: Personal{
		FullName:     "John Doe",
		JobTitle:     "Senior Software Engineer",
		Age:          "30",
		Location:     "San Francisco, CA",
		ProfileImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop",
	},
	Contact: Contact{
		Phone:    "+1 (234) 567-890",
		Email:    "john.doe@email.com",
		LinkedIn: "https://linkedin.com/in/johndoe",
		GitHub:   "https://github.com/johndoe",
	},
	Summary: "Experienced Software Engineer with 8+ years of expertise in full-stack development, " +
		"specializing in building scalable web applications and microservices. Proven track record of " +
		"leading cross-functional teams and delivering high-impact solutions that increased revenue by 40%. " +
		"Passionate about clean code, modern architectures, and mentoring junior developers to achieve " +
		"technical excellence.",
	Experience: []Experience{
		{
			Company:   "TechCorp Solutions",
			Role:      "Senior Software Engineer",
			StartDate: "2021",
			EndDate:   "Present",
			Achievements: []string{
				"Led a team of 5 engineers to rebuild the core platform using React and Node.js, resulting in 60% faster load times",
				"Architected and deployed microservices infrastructure handling 1M+ daily requests with 99.9% uptime",
				"Implemented CI/CD pipelines that reduced deployment time by 70% and eliminated production errors",
			},
		},
		{
			Company:   "InnovateSoft Inc",
			Role:      "Full Stack Developer",
			StartDate: "2018",
			EndDate:   "2021",
			Achievements: []string{
				"Developed customer-facing dashboard that increased user engagement by 45% and reduced churn by 25%",
				"Optimized database queries reducing API response time from 3s to 200ms",
			},
		},
	},
	Education: []Education{
		{
			Degree:         "Master of Science in Computer Science",
			Institution:    "Stanford University",
			GraduationDate: "2016",
			GPA:            "3.9",
		},
		{
			Degree:         "Bachelor of Science in Software Engineering",
			Institution:    "University of California, Berkeley",
			GraduationDate: "2014",
			GPA:            "3.8",
		},
	},
	TechnicalSkills: []Skill{
		{Name: "JavaScript / TypeScript", Level: 95},
		{Name: "React / Next.js", Level: 90},
		{Name: "Node.js / Express", Level: 88},
		{Name: "Python / Django", Level: 82},
		{Name: "AWS / Cloud Services", Level: 78},
	},
	SoftSkills: []Skill{
		{Name: "Leadership", Level: 92},
		{Name: "Communication", Level: 88},
		{Name: "Problem Solving", Level: 95},
		{Name: "Team Collaboration", Level: 90},
		{Name: "Project Management", Level: 85},
	},
	Projects: []Project{
		{
			Name:         "E-Commerce Platform",
			Description:  "Built a full-stack e-commerce solution handling 10K+ daily transactions with real-time inventory management.",
			Technologies: []string{"React", "Node.js", "MongoDB"},
			DemoURL:      "#",
			CodeURL:      "#",
		},
		{
			Name:         "AI Analytics Dashboard",
			Description:  "Developed a real-time analytics dashboard with ML predictions for business intelligence.",
			Technologies: []string{"Python", "TensorFlow", "D3.js"},
			DemoURL:      "#",
			CodeURL:      "#",
		},
	},
	Certifications: []Certification{
		{Name: "AWS Solutions Architect", Organization: "Amazon Web Services", Year: "2023"},
		{Name: "Google Cloud Professional", Organization: "Google Cloud Platform", Year: "2022"},
	},
	Awards: []Award{
		{Name: "Employee of the Year", Organization: "TechCorp Solutions", Year: "2023"},
		{Name: "Hackathon Winner", Organization: "TechCrunch Disrupt", Year: "2022"},
	},
	Design: Design{
		Theme: DefaultTheme,
		Font:  DefaultFont,
	},
}

// Default returns a deep copy of the built-in sample profile.
func Default() *Document {
	return sample.Clone()
}
