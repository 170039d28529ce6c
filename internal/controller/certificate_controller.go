package controller

import (
	"online_course_backend/internal/service"
	"online_course_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	certificateService *service.CertificateService
}

func NewCertificateController(certificateService *service.CertificateService) *CertificateController {
	return &CertificateController{certificateService: certificateService}
}

// Generate godoc
// @Summary Issue a certificate for a completed enrollment
// @Description Repeat requests for the same enrollment return the existing certificate.
// @Tags certificates
// @Accept json
// @Produce json
// @Param body body service.CertificateInput true "certificate payload"
// @Success 201 {object} util.Response{data=model.Certificate}
// @Router /certificates/generate [post]
func (c *CertificateController) Generate(ctx *gin.Context) {
	var req service.CertificateInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	certificate, err := c.certificateService.Generate(req)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Created(ctx, certificate)
}

// GetByID godoc
// @Summary Get a certificate by id
// @Tags certificates
// @Produce json
// @Param id path int true "certificate id"
// @Success 200 {object} util.Response{data=model.Certificate}
// @Router /certificates/{id} [get]
func (c *CertificateController) GetByID(ctx *gin.Context) {
	certificate, err := c.certificateService.GetByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, certificate)
}

// GetByCode godoc
// @Summary Look up a certificate by its verification code
// @Tags certificates
// @Produce json
// @Param code path string true "certificate code"
// @Success 200 {object} util.Response{data=model.Certificate}
// @Router /certificates/code/{code} [get]
func (c *CertificateController) GetByCode(ctx *gin.Context) {
	certificate, err := c.certificateService.GetByCode(ctx.Param("code"))
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, certificate)
}

// GetByEnrollment godoc
// @Summary Get the certificate issued for an enrollment
// @Tags certificates
// @Produce json
// @Param enrollmentId path int true "enrollment id"
// @Success 200 {object} util.Response{data=model.Certificate}
// @Router /certificates/enrollment/{enrollmentId} [get]
func (c *CertificateController) GetByEnrollment(ctx *gin.Context) {
	certificate, err := c.certificateService.GetByEnrollment(util.MustParseUint(ctx.Param("enrollmentId")))
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, certificate)
}

// StudentCertificates godoc
// @Summary List a student's certificates
// @Tags certificates
// @Produce json
// @Param studentId path int true "student id"
// @Success 200 {object} util.Response{data=[]model.Certificate}
// @Router /certificates/student/{studentId} [get]
func (c *CertificateController) StudentCertificates(ctx *gin.Context) {
	certificates, err := c.certificateService.StudentCertificates(util.MustParseUint(ctx.Param("studentId")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, certificates)
}

// ExistsForEnrollment godoc
// @Summary Check whether an enrollment already has a certificate
// @Tags certificates
// @Produce json
// @Param enrollmentId path int true "enrollment id"
// @Success 200 {object} util.Response{data=bool}
// @Router /certificates/enrollment/{enrollmentId}/exists [get]
func (c *CertificateController) ExistsForEnrollment(ctx *gin.Context) {
	exists, err := c.certificateService.ExistsForEnrollment(util.MustParseUint(ctx.Param("enrollmentId")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, exists)
}

// DeleteCertificate godoc
// @Summary Delete a certificate
// @Tags certificates
// @Produce json
// @Param id path int true "certificate id"
// @Success 200 {object} util.Response
// @Router /certificates/{id} [delete]
func (c *CertificateController) DeleteCertificate(ctx *gin.Context) {
	if err := c.certificateService.DeleteCertificate(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
