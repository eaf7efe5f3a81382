package main

import (
	"quickcart/internal/config"
	"quickcart/internal/domain/model"
	"quickcart/internal/handler"
	"quickcart/internal/infra/cache"
	"quickcart/internal/infra/db"
	"quickcart/internal/infra/httpapi"
	infraRepo "quickcart/internal/infra/repository"
	"quickcart/internal/server"
	"quickcart/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	//.envが無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.CartRecord{},
		&model.WishlistRecord{},
	); err != nil {
		panic(err)
	}

	//Redis（カタログキャッシュ用）
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	//Repository（GORM実装）生成
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	wishlistRepo := infraRepo.NewWishlistGormRepository(gormDB)

	//外部ストアAPIのゲートウェイ
	catalogClient := httpapi.NewCatalogClient(cfg.CatalogAPIURL, cfg.UpstreamTimeout)
	catalog := cache.NewCatalogCache(rdb, cfg.CatalogCacheTTL, catalogClient)
	profiles := httpapi.NewProfileClient(cfg.ProfileAPIURL, cfg.UpstreamTimeout)
	orders := httpapi.NewOrderClient(cfg.OrderAPIURL, cfg.UpstreamTimeout)

	//Usecase生成
	productUC := usecase.NewProductUsecase(catalog)
	cartUC := usecase.NewCartUsecase(cartRepo, catalog)
	checkoutUC := usecase.NewCheckoutUsecase(cartRepo, catalog, profiles, orders)
	wishlistUC := usecase.NewWishlistUsecase(wishlistRepo, catalog)

	//Handler生成
	productH := handler.NewProductHandler(productUC)
	cartH := handler.NewCartHandler(cartUC)
	checkoutH := handler.NewCheckoutHandler(checkoutUC)
	wishlistH := handler.NewWishlistHandler(wishlistUC)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	e := server.New(cfg, productH, cartH, checkoutH, wishlistH)
	if err := server.Start(e, addr); err != nil {
		panic(err)
	}
}
