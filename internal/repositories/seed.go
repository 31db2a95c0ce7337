package repositories

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/maxaizer/job-board/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Seed loads the demonstration dataset through the store contract, so the
// same rows end up in whichever backend is active. Jobs are wired to the
// freshly generated taxonomy ids round-robin and get a posting time spread
// over the last week.
func Seed(ctx context.Context, store Store) error {

	cities := []models.InsertCity{
		{Name: "Mumbai", State: "Maharashtra", JobCount: 20000, ImageURL: lo.ToPtr("https://images.unsplash.com/photo-1570168007204-dfb528c6958f?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=200")},
		{Name: "Delhi", State: "Delhi", JobCount: 20000, ImageURL: lo.ToPtr("https://images.unsplash.com/photo-1587474260584-136574528ed5?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=200")},
		{Name: "Bangalore", State: "Karnataka", JobCount: 15000, ImageURL: lo.ToPtr("https://images.unsplash.com/photo-1570168007204-dfb528c6958f?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=200")},
		{Name: "Chennai", State: "Tamil Nadu", JobCount: 8000, ImageURL: lo.ToPtr("https://images.unsplash.com/photo-1582510003544-4d00b7f74220?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=200")},
		{Name: "Hyderabad", State: "Telangana", JobCount: 8000, ImageURL: lo.ToPtr("https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=200")},
	}

	companies := []models.InsertCompany{
		{Name: "Delhivery", Logo: lo.ToPtr("truck"), Description: lo.ToPtr("Leading logistics company"), Industry: lo.ToPtr("Logistics"), Size: lo.ToPtr("10000+")},
		{Name: "Urban Company", Logo: lo.ToPtr("tools"), Description: lo.ToPtr("Home services platform"), Industry: lo.ToPtr("Services"), Size: lo.ToPtr("5000+")},
		{Name: "Uber", Logo: lo.ToPtr("car"), Description: lo.ToPtr("Ride-hailing service"), Industry: lo.ToPtr("Transportation"), Size: lo.ToPtr("50000+")},
		{Name: "BigBasket", Logo: lo.ToPtr("shopping-basket"), Description: lo.ToPtr("Online grocery delivery"), Industry: lo.ToPtr("E-commerce"), Size: lo.ToPtr("10000+")},
		{Name: "Blinkit", Logo: lo.ToPtr("shipping-fast"), Description: lo.ToPtr("Quick commerce delivery"), Industry: lo.ToPtr("E-commerce"), Size: lo.ToPtr("5000+")},
		{Name: "Zomato", Logo: lo.ToPtr("utensils"), Description: lo.ToPtr("Food delivery platform"), Industry: lo.ToPtr("Food Tech"), Size: lo.ToPtr("20000+")},
		{Name: "Amazon", Logo: lo.ToPtr("box"), Description: lo.ToPtr("E-commerce giant"), Industry: lo.ToPtr("E-commerce"), Size: lo.ToPtr("100000+")},
		{Name: "HDFC Bank", Logo: lo.ToPtr("university"), Description: lo.ToPtr("Leading private bank"), Industry: lo.ToPtr("Banking"), Size: lo.ToPtr("100000+")},
		{Name: "TCS", Logo: lo.ToPtr("laptop"), Description: lo.ToPtr("IT services and consulting"), Industry: lo.ToPtr("IT"), Size: lo.ToPtr("500000+")},
	}

	categories := []models.InsertJobCategory{
		{Name: "Delivery", Icon: lo.ToPtr("shipping-fast"), JobCount: 1200000},
		{Name: "Driver", Icon: lo.ToPtr("car"), JobCount: 200000},
		{Name: "Warehouse / Logistics", Icon: lo.ToPtr("warehouse"), JobCount: 310000},
		{Name: "Manufacturing", Icon: lo.ToPtr("industry"), JobCount: 40000},
		{Name: "Customer Support", Icon: lo.ToPtr("headset"), JobCount: 350000},
		{Name: "Sales", Icon: lo.ToPtr("chart-line"), JobCount: 240000},
		{Name: "IT / Software", Icon: lo.ToPtr("laptop-code"), JobCount: 10000},
		{Name: "Accountant", Icon: lo.ToPtr("calculator"), JobCount: 30000},
		{Name: "Marketing", Icon: lo.ToPtr("bullhorn"), JobCount: 25000},
		{Name: "Security Guard", Icon: lo.ToPtr("shield-alt"), JobCount: 50000},
		{Name: "Housekeeping", Icon: lo.ToPtr("broom"), JobCount: 70000},
		{Name: "Cook / Chef", Icon: lo.ToPtr("utensils"), JobCount: 20000},
	}

	qualifications := []models.InsertQualification{
		{Name: "Below 10th", Level: lo.ToPtr(1), JobCount: 2120000},
		{Name: "10th Pass", Level: lo.ToPtr(2), JobCount: 370000},
		{Name: "12th Pass", Level: lo.ToPtr(3), JobCount: 710000},
		{Name: "Diploma", Level: lo.ToPtr(4), JobCount: 60000},
		{Name: "Graduate", Level: lo.ToPtr(5), JobCount: 480000},
		{Name: "Post Graduate", Level: lo.ToPtr(6), JobCount: 20000},
	}

	jobTypes := []models.InsertJobType{
		{Name: "Work from home", Icon: lo.ToPtr("home"), JobCount: 110000},
		{Name: "Part Time", Icon: lo.ToPtr("clock"), JobCount: 720000},
		{Name: "Jobs for Women", Icon: lo.ToPtr("venus"), JobCount: 260000},
		{Name: "Fresher jobs", Icon: lo.ToPtr("seedling"), JobCount: 630000},
		{Name: "Full Time", Icon: lo.ToPtr("briefcase"), JobCount: 1500000},
	}

	var cityIDs, companyIDs, categoryIDs, qualificationIDs, jobTypeIDs []string

	for _, city := range cities {
		created, err := store.CreateCity(ctx, city)
		if err != nil {
			return errors.Wrap(err, "failed to seed city")
		}
		cityIDs = append(cityIDs, created.ID)
	}

	for _, company := range companies {
		company.Website = lo.ToPtr(companyWebsite(company.Name))
		created, err := store.CreateCompany(ctx, company)
		if err != nil {
			return errors.Wrap(err, "failed to seed company")
		}
		companyIDs = append(companyIDs, created.ID)
	}

	for _, category := range categories {
		created, err := store.CreateJobCategory(ctx, category)
		if err != nil {
			return errors.Wrap(err, "failed to seed job category")
		}
		categoryIDs = append(categoryIDs, created.ID)
	}

	for _, qualification := range qualifications {
		created, err := store.CreateQualification(ctx, qualification)
		if err != nil {
			return errors.Wrap(err, "failed to seed qualification")
		}
		qualificationIDs = append(qualificationIDs, created.ID)
	}

	for _, jobType := range jobTypes {
		created, err := store.CreateJobType(ctx, jobType)
		if err != nil {
			return errors.Wrap(err, "failed to seed job type")
		}
		jobTypeIDs = append(jobTypeIDs, created.ID)
	}

	jobs := []models.InsertJob{
		{
			Title:        "Delivery Executive",
			Description:  "Looking for dedicated delivery executives for food delivery. Must have own vehicle and valid driving license.",
			Location:     "Mumbai, Maharashtra",
			SalaryMin:    lo.ToPtr(15000),
			SalaryMax:    lo.ToPtr(20000),
			Experience:   lo.ToPtr("0-1 years"),
			Requirements: models.StringList{"Own vehicle", "Valid driving license", "Good communication skills"},
			Benefits:     models.StringList{"Fuel allowance", "Incentives", "Flexible hours"},
			ContactPhone: lo.ToPtr("+91 9876543210"),
			IsFeatured:   lo.ToPtr(true),
		},
		{
			Title:        "Customer Support Executive",
			Description:  "Handle customer inquiries via phone and chat. Excellent communication skills required. Training provided.",
			Location:     "Remote",
			SalaryMin:    lo.ToPtr(18000),
			SalaryMax:    lo.ToPtr(25000),
			Experience:   lo.ToPtr("0-2 years"),
			Requirements: models.StringList{"Good English communication", "Computer literacy", "Problem-solving skills"},
			Benefits:     models.StringList{"Work from home", "Health insurance", "Paid training"},
			ContactPhone: lo.ToPtr("+91 9876543211"),
			IsFeatured:   lo.ToPtr(true),
		},
		{
			Title:        "Sales Executive",
			Description:  "Sell banking products and services to customers. Meet monthly targets and build customer relationships.",
			Location:     "Delhi, NCR",
			SalaryMin:    lo.ToPtr(20000),
			SalaryMax:    lo.ToPtr(30000),
			Experience:   lo.ToPtr("1-3 years"),
			Requirements: models.StringList{"Sales experience", "Target-oriented", "Customer relationship skills"},
			Benefits:     models.StringList{"Commission", "Travel allowance", "Career growth"},
			ContactPhone: lo.ToPtr("+91 9876543212"),
			IsFeatured:   lo.ToPtr(false),
		},
		{
			Title:        "Web Developer",
			Description:  "Develop and maintain web applications using modern technologies. 2+ years experience required.",
			Location:     "Bangalore, Karnataka",
			SalaryMin:    lo.ToPtr(35000),
			SalaryMax:    lo.ToPtr(50000),
			Experience:   lo.ToPtr("2-5 years"),
			Requirements: models.StringList{"React/Node.js", "JavaScript", "HTML/CSS", "Git"},
			Benefits:     models.StringList{"Health insurance", "Flexible hours", "Learning budget"},
			ContactPhone: lo.ToPtr("+91 9876543213"),
			IsFeatured:   lo.ToPtr(true),
		},
	}

	for index, job := range jobs {
		job.CityID = lo.ToPtr(cityIDs[index%len(cityIDs)])
		job.CompanyID = lo.ToPtr(companyIDs[index%len(companyIDs)])
		job.CategoryID = lo.ToPtr(categoryIDs[index%len(categoryIDs)])
		job.QualificationID = lo.ToPtr(qualificationIDs[index%len(qualificationIDs)])
		job.JobTypeID = lo.ToPtr(jobTypeIDs[index%len(jobTypeIDs)])
		job.ContactEmail = lo.ToPtr(fmt.Sprintf("hr@company%d.com", index))
		job.PostedAt = lo.ToPtr(randomPostTime())

		if _, err := store.CreateJob(ctx, job); err != nil {
			return errors.Wrap(err, "failed to seed job")
		}
	}

	return nil
}

func companyWebsite(name string) string {
	return "https://" + strings.ReplaceAll(strings.ToLower(name), " ", "") + ".com"
}

func randomPostTime() time.Time {
	week := 7 * 24 * time.Hour
	return time.Now().UTC().Add(-time.Duration(rand.Int63n(int64(week))))
}

func (m *Memory) seed() {
	if err := Seed(context.Background(), m); err != nil {
		panic(err)
	}
}
