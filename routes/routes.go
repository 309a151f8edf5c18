package routes

import (
	"go-postgres-ziswaf/controllers"
	"go-postgres-ziswaf/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", controllers.Logout)
		auth.GET("/me", middlewares.AuthMiddleware(), controllers.Me)
	}

	// Kebijakan auth seragam: list & detail juga butuh cookie token.
	penyaluran := r.Group("/penyaluran", middlewares.AuthMiddleware())
	{
		penyaluran.GET("", controllers.GetAllPenyaluran)
		penyaluran.POST("", controllers.CreatePenyaluran)
		penyaluran.GET("/eksport", controllers.EksportPenyaluran)
		penyaluran.POST("/import", controllers.ImportPenyaluran)
		penyaluran.GET("/:id", controllers.GetPenyaluranByID)
		penyaluran.PUT("/:id", controllers.UpdatePenyaluran)
		penyaluran.DELETE("/:id", controllers.DeletePenyaluran)
	}

	mustahiq := r.Group("/mustahiq", middlewares.AuthMiddleware())
	{
		mustahiq.GET("", controllers.GetAllMustahiq)
		mustahiq.POST("", controllers.CreateMustahiq)
		mustahiq.GET("/:id", controllers.GetMustahiqByID)
		mustahiq.PUT("/:id", controllers.UpdateMustahiq)
		mustahiq.DELETE("/:id", controllers.DeleteMustahiq)
	}

	program := r.Group("/program", middlewares.AuthMiddleware())
	{
		program.GET("", controllers.GetAllProgram)
		program.POST("", controllers.CreateProgram)
		program.GET("/:id", controllers.GetProgramByID)
		program.PUT("/:id", controllers.UpdateProgram)
		program.DELETE("/:id", controllers.DeleteProgram)
	}

	coa := r.Group("/coa", middlewares.AuthMiddleware())
	{
		coa.GET("", controllers.GetAllCoa)
		coa.POST("", controllers.CreateCoa)
		coa.GET("/:id", controllers.GetCoaByID)
		coa.DELETE("/:id", controllers.DeleteCoa)
	}

	users := r.Group("/users", middlewares.AuthMiddleware())
	{
		users.GET("", controllers.GetAllUsers)
		users.POST("", controllers.CreateUser)
	}
}
