package connection

import (
	"log"
	"weekplanner/controller/ai"
	"weekplanner/controller/auth"
	"weekplanner/controller/board"
	"weekplanner/controller/task"
	"weekplanner/controller/user"
	"weekplanner/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	router := gin.Default()

	fb, err := FBConnection()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	aiClient := services.NewAIClientFromEnv()

	auth.SignInController(router, fb)
	auth.SignUpController(router, fb)
	auth.GoogleSignInController(router, fb)
	auth.SignOutController(router, fb)
	auth.RefreshTokenController(router, fb)
	auth.CaptchaController(router, fb)
	user.UserController(router, fb)
	board.WeekBoardController(router, fb)
	task.CreateTaskController(router, fb)
	task.UpdateTaskController(router, fb)
	task.MoveTaskController(router, fb)
	ai.AIController(router, fb, aiClient)

	router.Run()
}
