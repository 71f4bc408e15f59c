package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mealmate/internal/blog"
	"mealmate/internal/config"
	"mealmate/internal/daily"
	"mealmate/internal/database"
	"mealmate/internal/feedback"
	"mealmate/internal/handlers"
	"mealmate/internal/menu"
	"mealmate/internal/middleware"
	"mealmate/internal/recipe"
	"mealmate/internal/store"
	"mealmate/internal/user"
)

func main() {
	config.Load()
	if err := run(config.AppEnv); err != nil {
		logrus.WithField("area", "MAIN").Fatal(err)
	}
}

// run owns every deferred cleanup; main exits only after it returns.
func run(cfg config.Config) error {
	log := logrus.WithField("area", "MAIN")

	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.WithError(err).Warn("mongo disconnect failed")
		}
	}()

	db := client.Database(cfg.DBName)
	log.WithField("db", db.Name()).Info("MongoDB connected")

	if err := database.EnsureIndexes(db); err != nil {
		log.WithError(err).Warn("index setup incomplete")
	}

	recipeStore := store.NewRecipes(db)
	accountStore := store.NewAccounts(db)

	menus := menu.NewComposer(store.NewMenus(db), recipeStore, accountStore)
	dailyMenus := daily.NewService(store.NewDailyMenus(db), recipeStore)
	recipes := recipe.NewService(recipeStore)
	ratings := feedback.NewService(store.NewFeedback(db), recipeStore)
	users := user.NewService(accountStore)
	blogs := blog.NewService(store.NewBlogs(db))
	categories := blog.NewCategories(store.NewBlogCategories(db))

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Timeout(cfg.RequestTimeout))

	requireAuth := middleware.AuthGuard(cfg.JWTSecret)
	requireAdmin := middleware.AdminAuth(cfg.JWTSecret)

	r.GET("/healthz", handlers.Health(func(ctx context.Context) error {
		return database.Ping(ctx, db)
	}))

	userGroup := r.Group("/users")
	{
		userGroup.GET("/profile", requireAuth, handlers.GetProfile(users))
		userGroup.PATCH("/update-profile", requireAuth, handlers.UpdateProfile(users))
		userGroup.GET("/listCustomer", requireAdmin, handlers.ListCustomers(users))
		userGroup.GET("", requireAdmin, handlers.GetUsers(users))
		userGroup.GET("/:userId", requireAdmin, handlers.GetUser(users))
	}

	dailyGroup := r.Group("/daily", requireAuth)
	{
		dailyGroup.GET("", handlers.GetDailyMenu(dailyMenus))
		dailyGroup.POST("/create", handlers.CreateDailyMenu(dailyMenus))
		dailyGroup.PUT("/update", handlers.UpdateDailyMenu(dailyMenus))
	}

	r.GET("/menus", handlers.GetMenus(menus))
	r.GET("/menus/:id", handlers.GetMenu(menus))
	menuGroup := r.Group("/menus", requireAuth)
	{
		menuGroup.POST("", handlers.CreateMenu(menus))
		menuGroup.PUT("/:id", handlers.UpdateMenu(menus))
		menuGroup.DELETE("/:id", handlers.DeleteMenu(menus))
		menuGroup.DELETE("", handlers.DeleteMenus(menus))
	}

	r.GET("/recipes", handlers.GetRecipes(recipes))
	r.GET("/recipes/:id", handlers.GetRecipe(recipes))
	r.GET("/recipes/:id/by-slug", handlers.GetRecipeBySlug(recipes))
	recipeGroup := r.Group("/recipes", requireAdmin)
	{
		recipeGroup.POST("", handlers.CreateRecipe(recipes))
		recipeGroup.PUT("/:id", handlers.UpdateRecipe(recipes))
		recipeGroup.DELETE("/:id", handlers.DeleteRecipe(recipes))
	}

	r.POST("/feedback", requireAuth, handlers.CreateFeedback(ratings))
	r.GET("/feedback/:recipeId", handlers.GetRecipeFeedback(ratings))

	r.GET("/blogs", handlers.GetBlogs(blogs))
	r.GET("/blogs/:id", handlers.GetBlog(blogs))
	r.GET("/blogs/:id/by-slug", handlers.GetBlogBySlug(blogs))
	blogGroup := r.Group("/blogs", requireAdmin)
	{
		blogGroup.POST("", handlers.CreateBlog(blogs))
		blogGroup.PUT("/:id", handlers.UpdateBlog(blogs))
		blogGroup.DELETE("/:id", handlers.DeleteBlog(blogs))
		blogGroup.DELETE("", handlers.DeleteBlogs(blogs))
	}

	r.GET("/blog-categories", handlers.GetBlogCategories(categories))
	r.GET("/blog-categories/:id", handlers.GetBlogCategory(categories))
	r.GET("/blog-categories/:id/by-slug", handlers.GetBlogCategoryBySlug(categories))
	categoryGroup := r.Group("/blog-categories", requireAdmin)
	{
		categoryGroup.POST("", handlers.CreateBlogCategory(categories))
		categoryGroup.PUT("/:id", handlers.UpdateBlogCategory(categories))
		categoryGroup.DELETE("/:id", handlers.DeleteBlogCategory(categories))
		categoryGroup.DELETE("", handlers.DeleteBlogCategories(categories))
	}

	log.WithField("port", cfg.Port).Info("listening")
	return r.Run(":" + cfg.Port)
}
