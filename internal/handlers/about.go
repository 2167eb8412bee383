package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Photo string `json:"photo"`
}

// Team roster mirrors the frontend's fallback data, avatars included.
var aboutTeam = []TeamMember{
	{Name: "Mr. Bassem Bin Salah", Role: "Super Teacher 🎓", Photo: "https://api.multiavatar.com/Teacher.svg"},
	{Name: "Alex", Role: "Code Wizard 💻", Photo: "https://api.multiavatar.com/Alex.svg"},
	{Name: "Sarah", Role: "Design Artist 🎨", Photo: "https://api.multiavatar.com/Sarah.svg"},
	{Name: "Omar", Role: "Bug Hunter 🐞", Photo: "https://api.multiavatar.com/Omar.svg"},
	{Name: "Lina", Role: "Storyteller 📚", Photo: "https://api.multiavatar.com/Lina.svg"},
}

const (
	aboutDescriptionArabic  = "مدرستنا مخصصة لجعل التعلم تجربة سحرية من خلال منصة تعليمية مدعومة بالذكاء الاصطناعي. نحن نؤمن بقوة التعليم التفاعلي والتكنولوجيا في تحفيز العقول الشابة."
	aboutDescriptionEnglish = "Our school is dedicated to making learning a magical experience through AI-powered education. We believe in the power of interactive learning and technology to inspire young minds."
)

func About(c *gin.Context) {
	var req struct {
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	description := aboutDescriptionEnglish
	if req.Language == "ar" {
		description = aboutDescriptionArabic
	}
	c.JSON(http.StatusOK, gin.H{
		"school_description": description,
		"team":               aboutTeam,
	})
}
