package main

// General API documentation for swaggo. Run `make swagger-gen` to generate docs.
//
// @title           vramfitd API
// @version         1.0
// @description     HTTP API for estimating GPU memory requirements of ML models.
//
// @contact.name   vramfit maintainers
// @contact.url    https://github.com/your-org/vramfit
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
