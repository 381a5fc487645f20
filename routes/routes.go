package routes

import (
	"time"

	"github.com/SharadaShehan/IMS-Backend-sub000/app"
	"github.com/SharadaShehan/IMS-Backend-sub000/controllers"
	"github.com/SharadaShehan/IMS-Backend-sub000/models"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	uc := controllers.NewUserController(s)
	labCtl := controllers.NewLabController(s)
	resCtl := controllers.NewReservationController(s)
	maintCtl := controllers.NewMaintenanceController(s)

	authMW := app.AuthRequired(s.Tokens, s.Repo, a.Config)
	seenMW := app.TouchLastSeen(s.Repo, a.RDB, 5*time.Minute)
	clerkMW := app.RoleRequired(models.RoleClerk)
	adminMW := app.RoleRequired(models.RoleSystemAdmin)
	technicianMW := app.RoleRequired(models.RoleTechnician)
	requesterMW := app.RoleRequired(models.RoleStudent, models.RoleAcademicStaff)

	// ------------------------------
	// Auth
	// ------------------------------
	auth := r.Group("/auth")
	{
		auth.POST("/login", s.Login)
	}
	authed := auth.Group("", authMW, seenMW)
	{
		authed.POST("/logout", s.Logout)
		authed.GET("/whoami", s.Whoami)
	}

	// ------------------------------
	// User management (admin only)
	// ------------------------------
	users := r.Group("/api/users", authMW, adminMW)
	{
		users.GET("", uc.ListUsers) // ?q=&role=&page=&size=
		users.GET("/:id", uc.GetUser)
		users.POST("", uc.CreateUser)
		users.DELETE("/:id", uc.DeactivateUser)
	}

	// ------------------------------
	// Master data: labs / equipments / items
	// ------------------------------
	labs := r.Group("/api/labs", authMW, seenMW)
	{
		labs.GET("", labCtl.ListLabs)
		labs.GET("/:id", labCtl.GetLab)
	}
	labsAdmin := r.Group("/api/labs", authMW, adminMW)
	{
		labsAdmin.POST("", labCtl.CreateLab)
		labsAdmin.DELETE("/:id", labCtl.DeleteLab)
	}

	equipments := r.Group("/api/equipments", authMW, seenMW)
	{
		equipments.GET("", labCtl.ListEquipments) // ?labId=&q=
		equipments.GET("/:id", labCtl.GetEquipment)
		equipments.GET("/:id/availability", labCtl.EquipmentAvailability) // ?startDate=&endDate=
	}
	equipmentsClerk := r.Group("/api/equipments", authMW, clerkMW)
	{
		equipmentsClerk.POST("", labCtl.CreateEquipment)
		equipmentsClerk.DELETE("/:id", labCtl.DeleteEquipment)
	}

	items := r.Group("/api/items", authMW, seenMW)
	{
		items.GET("", labCtl.ListItems) // ?equipmentId=
		items.GET("/:id", labCtl.GetItem)
		items.GET("/:id/availability", labCtl.ItemAvailability) // ?startDate=&endDate=
	}
	itemsClerk := r.Group("/api/items", authMW, clerkMW)
	{
		itemsClerk.POST("", labCtl.CreateItem)
		itemsClerk.DELETE("/:id", labCtl.DeleteItem)
	}

	// ------------------------------
	// Reservation lifecycle
	// ------------------------------
	reservations := r.Group("/api/reservations", authMW, seenMW)
	{
		reservations.GET("/mine", resCtl.ListMine)
		reservations.GET("/:id", resCtl.Get)
		// owner check happens in the repo; any authenticated user may call
		reservations.POST("/:id/cancel", resCtl.Cancel)
	}
	reservationsRequest := r.Group("/api/reservations", authMW, requesterMW)
	{
		reservationsRequest.POST("", resCtl.Create)
	}
	reservationsClerk := r.Group("/api/reservations", authMW, clerkMW)
	{
		reservationsClerk.GET("", resCtl.List) // ?userId=&equipmentId=&itemId=&status=
		reservationsClerk.POST("/:id/accept", resCtl.Accept)
		reservationsClerk.POST("/:id/reject", resCtl.Reject)
		reservationsClerk.POST("/:id/borrow", resCtl.Borrow)
		reservationsClerk.POST("/:id/return", resCtl.Return)
	}

	// ------------------------------
	// Maintenance lifecycle
	// ------------------------------
	maintenances := r.Group("/api/maintenances", authMW, seenMW)
	{
		maintenances.GET("/:id", maintCtl.Get)
	}
	maintenancesClerk := r.Group("/api/maintenances", authMW, clerkMW)
	{
		maintenancesClerk.GET("", maintCtl.List) // ?itemId=&technicianId=&status=
		maintenancesClerk.POST("", maintCtl.Create)
		maintenancesClerk.POST("/:id/review", maintCtl.Review)
	}
	maintenancesTech := r.Group("/api/maintenances", authMW, technicianMW)
	{
		maintenancesTech.GET("/mine", maintCtl.ListMine)
		maintenancesTech.POST("/:id/borrow", maintCtl.Borrow)
		maintenancesTech.POST("/:id/submit", maintCtl.Submit)
	}
}
