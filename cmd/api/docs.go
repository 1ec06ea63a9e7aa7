package main

// @title           Education Consult API
// @version         1.0
// @description     API for the education consultancy platform: university and program catalog, scholarships, student applications and the AI study advisor.

// @contact.name   API Support
// @contact.email  support@educonsult.example.com

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description JWT authentication header using the Bearer scheme. Example: "Bearer {token}"
