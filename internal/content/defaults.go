// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import "time"

// Defaults holds the fallback content served when Airtable is unreachable
// or unconfigured. It is injected into the gateway rather than read from
// package globals so tests can run with alternate sets.
type Defaults struct {
	Settings     SiteSettings
	Programs     []Program
	Contacts     []ContactPerson
	Testimonials []Testimonial
	Stats        []Stat
	Roles        []InvolvementRole
	Impacts      []DonateImpact

	// Events produces fallback events relative to now, so the demo site
	// always shows an upcoming feed rather than stale past dates.
	Events func(now time.Time) []Event
}

// Builtin returns the stock fallback set used in offline/demo mode.
func Builtin() Defaults {
	return Defaults{
		Settings: SiteSettings{
			OrgName:   "Friendship Circle Brooklyn",
			Tagline:   "Building a community where every child belongs",
			Mission:   "Friendship Circle Brooklyn pairs teen volunteers with children who have special needs, providing programs of socialization, inclusion, and support for the entire family.",
			HeroBadge: "✨ Building Friendships Since 2011",

			Phone:     "+17185551234",
			WhatsApp:  "+17185551234",
			Email:     "info@fcbrooklyn.org",
			Address:   "527 Empire Blvd, Brooklyn, NY 11225",
			Instagram: "https://instagram.com/fcbrooklyn",
			Facebook:  "https://facebook.com/fcbrooklyn",

			DonateURL:      "",
			DonateHeadline: "Make a Difference",
			DonateSubtitle: "Every dollar brings a child closer to friendship, belonging, and joy.",

			EventsLayout:   LayoutFeed,
			ProgramsLayout: LayoutGrid,
			GalleryLayout:  LayoutGrid,

			ShowGallery:      true,
			ShowStats:        true,
			ShowTestimonials: true,
			ShowPrograms:     true,

			ColorPrimary:      "#E8634A",
			ColorPrimaryLight: "#FFF0ED",
			ColorSecondary:    "#1B2845",
			ColorAccent:       "#F5A623",

			DonateAmounts: []int{18, 36, 72, 180, 360, 1000},
		},

		Events: builtinEvents,

		Programs: []Program{
			{ID: "1", Title: "Sunday Friends Club", Description: "Weekly social hangouts pairing teen volunteers with special friends", Icon: "🤝", Color: "#3498DB", Order: 1},
			{ID: "2", Title: "Holiday Programs", Description: "Inclusive celebrations for every Jewish holiday", Icon: "🕎", Color: "#9B59B6", Order: 2},
			{ID: "3", Title: "Summer Camp", Description: "An unforgettable summer experience for children of all abilities", Icon: "☀️", Color: "#F39C12", Order: 3},
			{ID: "4", Title: "Family Support", Description: "Resources, respite, and community for the whole family", Icon: "💛", Color: "#27AE60", Order: 4},
			{ID: "5", Title: "Teen Leadership", Description: "Empowering teens to become compassionate community leaders", Icon: "⭐", Color: "#E8634A", Order: 5},
			{ID: "6", Title: "Birthday Circle", Description: "Every child deserves an amazing birthday celebration", Icon: "🎂", Color: "#E91E63", Order: 6},
		},

		Contacts: []ContactPerson{
			{ID: "1", Name: "Main Office", Role: "General Inquiries", Phone: "+17185551234", WhatsApp: "+17185551234", Email: "info@fcbrooklyn.org", Avatar: "🏢", Order: 1},
			{ID: "2", Name: "Sarah Goldman", Role: "Program Director", Phone: "+17185551235", WhatsApp: "+17185551235", Email: "sarah@fcbrooklyn.org", Avatar: "👩", Order: 2},
			{ID: "3", Name: "Rivky Levin", Role: "Volunteer Coordinator", Phone: "+17185551236", WhatsApp: "+17185551236", Email: "rivky@fcbrooklyn.org", Avatar: "👩‍🦰", Order: 3},
			{ID: "4", Name: "Mendel Katz", Role: "Events & Outreach", Phone: "+17185551237", WhatsApp: "+17185551237", Email: "mendel@fcbrooklyn.org", Avatar: "👨", Order: 4},
		},

		Testimonials: []Testimonial{
			{ID: "1", Quote: "Friendship Circle changed our family's life. For the first time, my son has real friends who truly see him.", Author: "Rachel M.", Role: "Parent", Order: 1},
			{ID: "2", Quote: "Volunteering here taught me more about life than anything else. These kids inspire me every single week.", Author: "Dina K.", Role: "Teen Volunteer", Order: 2},
			{ID: "3", Quote: "The warmth and inclusion is unlike anything we've experienced. This community is extraordinary.", Author: "David & Leah S.", Role: "Parents", Order: 3},
		},

		Stats: []Stat{
			{ID: "1", Number: "350+", Label: "Children Served", Order: 1},
			{ID: "2", Number: "200+", Label: "Teen Volunteers", Order: 2},
			{ID: "3", Number: "50+", Label: "Programs Per Year", Order: 3},
			{ID: "4", Number: "15", Label: "Years of Impact", Order: 4},
		},

		Roles: []InvolvementRole{
			{ID: "1", Title: "Become a Volunteer", Description: "Join 200+ teens making a difference every week. Earn community service hours while building lifelong friendships.", Icon: "🙋", Color: "#E8634A", CTALabel: "Sign Up to Volunteer", CTAURL: "https://wufoo.com/forms/volunteer-signup", Order: 1},
			{ID: "2", Title: "Enroll Your Child", Description: "Register your child for our inclusive programs. Every child deserves friendship, fun, and belonging.", Icon: "🧒", Color: "#3498DB", CTALabel: "Register Now", CTAURL: "https://wufoo.com/forms/enrollment", Order: 2},
			{ID: "3", Title: "Sponsor a Program", Description: "Your generosity powers our mission. Sponsor a specific program or event and see your impact firsthand.", Icon: "💝", Color: "#9B59B6", CTALabel: "Sponsorship Info", CTAURL: "https://wufoo.com/forms/sponsor", Order: 3},
			{ID: "4", Title: "Partner With Us", Description: "Schools, organizations, and businesses — let's create impact together.", Icon: "🤝", Color: "#27AE60", CTALabel: "Get in Touch", CTAURL: "https://wufoo.com/forms/partnership", Order: 4},
		},

		Impacts: []DonateImpact{
			{ID: "1", Amount: "$18", Description: "Supplies for one child's weekly activity", Order: 1},
			{ID: "2", Amount: "$72", Description: "One month of Sunday Friends Club", Order: 2},
			{ID: "3", Amount: "$360", Description: "Full holiday program sponsorship", Order: 3},
			{ID: "4", Amount: "$1,000", Description: "Sponsor a child for an entire year", Order: 4},
		},
	}
}

func builtinEvents(now time.Time) []Event {
	day := 24 * time.Hour
	return []Event{
		{
			ID:              "1",
			Title:           "Friendship Shabbat Party",
			Date:            now.Add(7 * day).Format(time.RFC3339),
			EndDate:         now.Add(7*day + 150*time.Minute).Format(time.RFC3339),
			Description:     "Join us for a beautiful Shabbat celebration with music, crafts, candle lighting, and a delicious dinner.",
			Location:        "FC Brooklyn Center",
			Tags:            []string{"Shabbat", "Family"},
			RegistrationURL: "#",
			Color:           "#E8634A",
			Status:          "Published",
		},
		{
			ID:              "2",
			Title:           "Purim Carnival Extravaganza",
			Date:            now.Add(14 * day).Format(time.RFC3339),
			EndDate:         now.Add(14*day + 4*time.Hour).Format(time.RFC3339),
			Description:     "Our biggest event of the year! Games, prizes, costumes, bounce houses, face painting, and so much more.",
			Location:        "Brooklyn Community Hall",
			Tags:            []string{"Holiday", "Carnival"},
			RegistrationURL: "#",
			Color:           "#9B59B6",
			Status:          "Published",
		},
		{
			ID:              "3",
			Title:           "Sunday Friends Club",
			Date:            now.Add(3 * day).Format(time.RFC3339),
			EndDate:         now.Add(3*day + 150*time.Minute).Format(time.RFC3339),
			Description:     "Weekly hangout where teen volunteers and their special friends enjoy arts, music, sports, and snacks.",
			Location:        "FC Brooklyn Center",
			Tags:            []string{"Weekly", "Club"},
			RegistrationURL: "#",
			Color:           "#3498DB",
			Status:          "Published",
		},
	}
}
