package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"inmobiliaria-api/config"
	"inmobiliaria-api/controllers"
	"inmobiliaria-api/domain"
	"inmobiliaria-api/middleware"
	"inmobiliaria-api/publishers"
	"inmobiliaria-api/repositories"
	"inmobiliaria-api/services"
	"inmobiliaria-api/storage"
)

func main() {
	// ============================================
	// 1. CONFIGURACIÓN - Variables de entorno
	// ============================================
	cfg := config.LoadConfig()

	log.Println("🔧 Configuración cargada:")
	log.Printf("   - DB Host: %s:%s", cfg.DBHost, cfg.DBPort)
	log.Printf("   - DB Name: %s", cfg.DBName)

	// ============================================
	// 2. CONECTAR A MYSQL
	// ============================================
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	log.Println("📡 Conectando a MySQL...")
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}
	log.Println("✅ Conexión a MySQL exitosa")

	// ============================================
	// 3. AUTO-MIGRAR LAS TABLAS
	// ============================================
	log.Println("🔄 Ejecutando migraciones...")
	err = db.AutoMigrate(
		&domain.Property{},
		&domain.Client{},
		&domain.Agent{},
		&domain.Contract{},
		&domain.Sale{},
		&domain.Rental{},
		&domain.Visit{},
	)
	if err != nil {
		log.Fatal("❌ Failed to migrate database:", err)
	}
	log.Println("✅ Tablas creadas/actualizadas")

	// ============================================
	// 4. INFRAESTRUCTURA OPCIONAL (caché, eventos, auditoría)
	// ============================================
	// Todo esto es best-effort: si no está disponible, la API arranca
	// igual con implementaciones nulas.
	cache := repositories.NewPropertyCacheRepository(cfg.MemcachedHost)

	publisher, err := publishers.NewRabbitMQPublisher(cfg.RabbitMQURL, "inmuebles_queue")
	if err != nil {
		log.Printf("⚠️  RabbitMQ no disponible, eventos deshabilitados: %v", err)
		publisher = publishers.NewNoopPublisher()
	}
	defer publisher.Close()

	audit, err := repositories.NewMongoAuditRepository(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Printf("⚠️  MongoDB no disponible, auditoría deshabilitada: %v", err)
		audit = repositories.NewNoopAuditRepository()
	}

	photos := storage.NewLocalPhotoStorage(cfg.UploadsDir)

	// ============================================
	// 5. INICIALIZAR CAPAS
	// ============================================
	log.Println("🏗️  Inicializando capas...")

	// Repositories: acceso a datos
	repos := repositories.NewRepositories(db)
	txManager := repositories.NewTxManager(db)

	// Services: reglas de negocio
	contractService := services.NewContractService(txManager, repos, publisher, audit)
	propertyService := services.NewPropertyService(txManager, repos, cache, photos, publisher, audit)
	clientService := services.NewClientService(txManager, repos, publisher, audit)
	agentService := services.NewAgentService(repos)

	// Controllers: manejan HTTP
	contractController := controllers.NewContractController(contractService)
	propertyController := controllers.NewPropertyController(propertyService)
	clientController := controllers.NewClientController(clientService)
	agentController := controllers.NewAgentController(agentService)

	log.Println("✅ Capas inicializadas")

	// ============================================
	// 6. CONFIGURAR GIN Y RUTAS
	// ============================================
	router := gin.Default()

	// CORS - Permitir requests desde el front
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "inmobiliaria-api",
		})
	})

	// Lecturas de despliegue: públicas, pueden quedar viejas
	router.GET("/inmuebles", propertyController.GetAllProperties)
	router.GET("/inmuebles/:id", propertyController.GetPropertyByID)
	router.GET("/contratos", contractController.GetAllContracts)
	router.GET("/contratos/:id", contractController.GetContractByID)
	router.GET("/agentes", agentController.GetAllAgents)
	router.GET("/agentes/:id", agentController.GetAgentByID)

	// Mutaciones: requieren JWT del back-office
	api := router.Group("/")
	api.Use(middleware.AuthMiddleware())
	{
		api.POST("/inmuebles", propertyController.CreateProperty)
		api.PUT("/inmuebles/:id", propertyController.UpdateProperty)
		api.PUT("/inmuebles/:id/estado", propertyController.UpdatePropertyStatus)
		api.GET("/inmuebles/:id/dependencias", propertyController.CheckDeletable)
		api.DELETE("/inmuebles/:id", propertyController.DeleteProperty)

		api.GET("/clientes", clientController.GetAllClients)
		api.GET("/clientes/:id", clientController.GetClientByID)
		api.POST("/clientes", clientController.CreateClient)
		api.PUT("/clientes/:id", clientController.UpdateClient)
		api.GET("/clientes/:id/dependencias", clientController.CheckDeletable)
		api.DELETE("/clientes/:id", clientController.DeleteClient)

		api.POST("/contratos", contractController.CreateContract)
		api.PUT("/contratos/:id", contractController.UpdateContract)
		api.PUT("/contratos/:id/estado", contractController.ChangeStatus)
		api.POST("/contratos/validar-fechas", contractController.ValidateDates)

		api.POST("/agentes", agentController.CreateAgent)
		api.PUT("/agentes/:id", agentController.UpdateAgent)
	}

	// ============================================
	// 7. ARRANCAR EL SERVIDOR
	// ============================================
	log.Println("🚀 =======================================")
	log.Printf("🚀 Inmobiliaria API corriendo en puerto %s", cfg.Port)
	log.Println("🚀 =======================================")

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Failed to start server:", err)
	}
}
