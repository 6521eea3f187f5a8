package content

import "github.com/eallis/wiifolio/internal/icon"

const unsplash = "https://images.unsplash.com/"

// Default returns the built-in catalog. Each call returns a fresh copy.
func Default() *Catalog {
	return &Catalog{
		Profile: Profile{
			Name:       "Eallis",
			Role:       "Creative Developer",
			Bio:        "Bridging design and code. Building interactive experiences that inspire. Passionate about Wii aesthetics, generative art, and creative technology.",
			AvatarPath: "/images/mii-eallis.png",
			Email:      "hello@eallis.dev",
		},
		Socials: []Social{
			{Platform: PlatformGitHub, Label: "GitHub", URL: "https://github.com/eallis", Icon: icon.GitHub},
			{Platform: PlatformLinkedIn, Label: "LinkedIn", URL: "https://linkedin.com/in/eallis", Icon: icon.LinkedIn},
			{Platform: PlatformEmail, Label: "Email", URL: "mailto:hello@eallis.dev", Icon: icon.Mail},
		},
		Projects: []DevProject{
			{
				ID:          "wii-portfolio",
				Title:       "Wii-Themed Portfolio",
				Description: "Interactive portfolio with Frutiger Aero aesthetics. Dual-purpose design for tech roles and creative applications.",
				Stack:       []string{"Next.js", "React", "Tailwind CSS", "Framer Motion"},
				DemoURL:     "https://eallis-portfolio.vercel.app",
				RepoURL:     "https://github.com/eallis/wii-portfolio",
				Thumbnail:   unsplash + "photo-1557821552-17105176677c?w=500&h=300&fit=crop",
				Featured:    true,
				Date:        "Jan 2025",
			},
			{
				ID:          "generative-art-system",
				Title:       "Generative Art System",
				Description: "Real-time generative art engine using WebGL and GLSL shaders. Integrates p5.js for interactive visual experiences.",
				Stack:       []string{"p5.js", "WebGL", "GLSL", "React"},
				DemoURL:     "https://generative-art-system.vercel.app",
				RepoURL:     "https://github.com/eallis/generative-art",
				Thumbnail:   unsplash + "photo-1561070791-2526d30994b5?w=500&h=300&fit=crop",
				Featured:    true,
				Date:        "Nov 2024",
			},
			{
				ID:          "motion-design-library",
				Title:       "Motion Design Component Library",
				Description: "Reusable React components with advanced Framer Motion animations. Built for design systems and enterprise applications.",
				Stack:       []string{"React", "Framer Motion", "TypeScript", "Storybook"},
				DemoURL:     "https://motion-library.vercel.app",
				RepoURL:     "https://github.com/eallis/motion-library",
				Thumbnail:   unsplash + "photo-1633356122544-f134324ef6db?w=500&h=300&fit=crop",
				Date:        "Oct 2024",
			},
			{
				ID:          "data-viz-dashboard",
				Title:       "Interactive Data Visualization Dashboard",
				Description: "Beautiful data visualization dashboard using D3.js and React. Real-time updates with WebSocket integration.",
				Stack:       []string{"React", "D3.js", "WebSocket", "Node.js"},
				RepoURL:     "https://github.com/eallis/data-viz-dashboard",
				Thumbnail:   unsplash + "photo-1551288049-bebda4e38f71?w=500&h=300&fit=crop",
				Date:        "Sep 2024",
			},
		},
		ArtWorks: []ArtWork{
			{
				ID:          "abstract-landscape",
				Title:       "Neural Landscape",
				Medium:      MediumDigital3D,
				Description: "Generative 3D landscape created by training a neural network on natural imagery. Explores the intersection of AI and artistic expression.",
				FinalImage:  unsplash + "photo-1561070791-2526d30994b5?w=800&h=600&fit=crop",
				ProcessImages: []string{
					unsplash + "photo-1517694712202-14dd9538aa97?w=400&h=300&fit=crop",
					unsplash + "photo-1551033406-611cf9a28f29?w=400&h=300&fit=crop",
					unsplash + "photo-1561070791-2526d30994b5?w=400&h=300&fit=crop",
				},
				Featured: true,
				Date:     "Dec 2024",
			},
			{
				ID:          "digital-painting-study",
				Title:       "Chromatic Study #7",
				Medium:      MediumDigitalPainting,
				Description: "An exploration of color theory and digital brushwork. 40+ hours of iterative refinement studying light, shadow, and atmospheric perspective.",
				FinalImage:  unsplash + "photo-1578321272176-b7bbc89dcb4e?w=800&h=600&fit=crop",
				ProcessImages: []string{
					unsplash + "photo-1533438481143-eb4c98c45dc2?w=400&h=300&fit=crop",
					unsplash + "photo-1496181133206-80ce9b88a853?w=400&h=300&fit=crop",
					unsplash + "photo-1578321272176-b7bbc89dcb4e?w=400&h=300&fit=crop",
				},
				Featured: true,
				Date:     "Nov 2024",
			},
			{
				ID:          "character-design-animation",
				Title:       "Mii Character Animation Rig",
				Medium:      MediumDigital3D,
				Description: "Complete character model and animation rig inspired by Wii Mii design. Includes 20+ idle, walking, and expression animations.",
				FinalImage:  unsplash + "photo-1633356122544-f134324ef6db?w=800&h=600&fit=crop",
				ProcessImages: []string{
					unsplash + "photo-1618005182384-a83a8e565055?w=400&h=300&fit=crop",
					unsplash + "photo-1552664730-d307ca884978?w=400&h=300&fit=crop",
					unsplash + "photo-1633356122544-f134324ef6db?w=400&h=300&fit=crop",
				},
				Date: "Oct 2024",
			},
			{
				ID:          "sketch-collection",
				Title:       "Urban Sketches Series",
				Medium:      MediumSketch,
				Description: "A collection of 30+ pen and digital sketches exploring urban environments, architecture, and human form. Weekly sketching practice over 3 months.",
				FinalImage:  unsplash + "photo-1565299585323-38d6b0865b47?w=800&h=600&fit=crop",
				ProcessImages: []string{
					unsplash + "photo-1543857778-c4a1a3e0b2eb?w=400&h=300&fit=crop",
					unsplash + "photo-1565299585323-38d6b0865b47?w=400&h=300&fit=crop",
					unsplash + "photo-1518234926320-c7ee46b8b3f1?w=400&h=300&fit=crop",
				},
				Featured: true,
				Date:     "Sep 2024",
			},
			{
				ID:          "generative-art-piece",
				Title:       "Algorithmic Bloom",
				Medium:      MediumAnimation,
				Description: "Animated generative art piece using p5.js. Explores recursive patterns, Perlin noise, and organic motion to simulate natural growth systems.",
				FinalImage:  unsplash + "photo-1561070791-2526d30994b5?w=800&h=600&fit=crop",
				ProcessImages: []string{
					unsplash + "photo-1516321318423-f06f70d504f0?w=400&h=300&fit=crop",
					unsplash + "photo-1532012197267-da84d127e765?w=400&h=300&fit=crop",
					unsplash + "photo-1561070791-2526d30994b5?w=400&h=300&fit=crop",
				},
				Date: "Aug 2024",
			},
		},
		Albums: []PhotoAlbum{
			{
				ID:          "japan-2024",
				Title:       "Japan Trip 2024",
				Description: "Summer adventure through Tokyo, Kyoto, and Osaka",
				CoverImage:  unsplash + "photo-1540959375944-7049f642e8b5?w=500&h=400&fit=crop",
				Date:        "August 2024",
				PhotoCount:  48,
				Photos: []PhotoItem{
					{ID: "1", URL: unsplash + "photo-1540959375944-7049f642e8b5?w=800&h=600&fit=crop", Caption: "Tokyo Skyline"},
					{ID: "2", URL: unsplash + "photo-1525968915348-2aa2b5b7a3d5?w=800&h=600&fit=crop", Caption: "Temple in Kyoto"},
					{ID: "3", URL: unsplash + "photo-1522383150241-6c85da37053b?w=800&h=600&fit=crop", Caption: "Osaka Castle"},
				},
			},
			{
				ID:          "conference-2024",
				Title:       "2024 Tech Conference",
				Description: "React Conf and Web Development Summit",
				CoverImage:  unsplash + "photo-1552664730-d307ca884978?w=500&h=400&fit=crop",
				Date:        "June 2024",
				PhotoCount:  32,
				Photos: []PhotoItem{
					{ID: "1", URL: unsplash + "photo-1552664730-d307ca884978?w=800&h=600&fit=crop", Caption: "Main Stage"},
					{ID: "2", URL: unsplash + "photo-1540575467063-178cb50ee898?w=800&h=600&fit=crop", Caption: "Networking Event"},
				},
			},
			{
				ID:          "london-2024",
				Title:       "London Adventure",
				Description: "Exploring the historic streets and modern design",
				CoverImage:  unsplash + "photo-1513635269975-59663e0ac1ad?w=500&h=400&fit=crop",
				Date:        "May 2024",
				PhotoCount:  56,
			},
			{
				ID:          "team-2024",
				Title:       "Team Gatherings",
				Description: "Photos from team events and celebrations",
				CoverImage:  unsplash + "photo-1552664730-d307ca884978?w=500&h=400&fit=crop",
				Date:        "Throughout 2024",
				PhotoCount:  28,
			},
		},
		News: []NewsItem{
			{
				ID:       "1",
				Title:    "Portfolio Launch",
				Date:     "January 2026",
				Category: CategoryUpdate,
				Preview:  "Welcome to my Wii-themed portfolio experience!",
				Body:     "This portfolio brings together my passion for Nintendo aesthetics and modern web development. Explore my projects, art, and get in touch!",
			},
			{
				ID:       "2",
				Title:    "New React Project",
				Date:     "December 2025",
				Category: CategoryProject,
				Preview:  "Built a real-time collaboration tool with WebSockets",
				Body:     "Developed a full-stack application featuring real-time updates, collaborative editing, and a beautiful UI inspired by modern design systems.",
			},
			{
				ID:       "3",
				Title:    "Featured on Dev.to",
				Date:     "November 2025",
				Category: CategoryAchievement,
				Preview:  "Article about Frutiger Aero design reached 10k views",
				Body:     "My deep-dive into nostalgic UI design resonated with the developer community. Thanks for all the support!",
			},
		},
		Skills: []SkillGroup{
			{Title: "Frontend Development", Icon: icon.Code, Skills: []string{"React & Next.js", "TypeScript", "Tailwind CSS", "Framer Motion"}},
			{Title: "Design & UX", Icon: icon.Palette, Skills: []string{"UI/UX Design", "Responsive Design", "Accessibility (WCAG)", "Animation Design"}},
		},
	}
}
